package selection

// Session is held for the lifetime of a mouse selection gesture.
type Session struct {
	release func()
}

// Acquire starts a session.
// capture, when not nil, is called now and returns the func that undoes it.
func Acquire(capture func() (release func())) *Session {
	sn := &Session{}
	if capture != nil {
		sn.release = capture()
	}
	return sn
}

// Release ends the session; calls after the first do nothing.
func (sn *Session) Release() {
	if sn == nil || sn.release == nil {
		return
	}
	release := sn.release
	sn.release = nil
	release()
}
