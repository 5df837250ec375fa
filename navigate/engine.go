// Package navigate turns key and mouse intents into selection and edit state.
package navigate

import (
	"context"

	"github.com/pkg/errors"

	"datasheet/clip"
	nt "datasheet/entity"
	"datasheet/selection"
)

// Config is the engine's configurable parameters.
type Config struct {
	// ClipboardKeys routes ctrl+x/c/v to cut, copy and paste
	ClipboardKeys bool `yaml:"clipboardKeys"`
	// DisablePageClick ignores clicks outside the grid
	DisablePageClick bool `yaml:"disablePageClick"`
}

// Engine is the selection and navigation state machine over a grid.
type Engine struct {
	grid    nt.Grid
	model   *selection.Model
	hooks   Hooks
	cfg     Config
	initial nt.Value // content when the current edit started
	session *selection.Session

	ctx    context.Context
	logger nt.Logger
}

// New creates an Engine writing through mdl.
func (cfg *Config) New(ctx context.Context, grid nt.Grid, mdl *selection.Model, hooks Hooks, lgr nt.Logger) *Engine {

	if hooks.Navigable == nil {
		hooks.Navigable = Always
	}

	return &Engine{
		grid:   grid,
		model:  mdl,
		hooks:  hooks,
		cfg:    *cfg,
		ctx:    ctx,
		logger: lgr,
	}
}

// Model returns the selection model the engine writes through.
func (eng *Engine) Model() *selection.Model {
	return eng.model
}

// HandleKey runs one key press through the state machine.
// ed is the open editor, if any; its value is committed when an edit ends.
func (eng *Engine) HandleKey(key Key, ed Editor) (Result, error) {

	st := eng.model.State()
	if !st.Start.Set {
		return Ignored, nil
	}

	if key.Ctrl {
		return eng.shortcut(st, key)
	}

	if st.IsEditing() {
		return eng.editingKey(st, key, ed)
	}
	return eng.selectedKey(st, key)
}

// HandleDirectionalIntent moves or extends the selection, returning false if nothing changed.
func (eng *Engine) HandleDirectionalIntent(intent Intent, shift bool) bool {

	key := Key{Intent: intent, Shift: shift}
	off, jumpRow := key.Offset()
	if intent == Enter {
		// shift+enter moves up, it does not extend upward after a commit
		shift = false
	}
	return eng.navigate(off, jumpRow, shift)
}

// HandleEditStart opens c for editing unless it is read-only.
// force keeps the existing content in the editor.
func (eng *Engine) HandleEditStart(c nt.Coord, force bool) bool {

	cell, ok := eng.grid.Cell(c.Row, c.Col)
	if !ok || cell.ReadOnly {
		return false
	}

	eng.initial = nt.Value{}
	if eng.hooks.Content != nil {
		eng.initial = eng.hooks.Content(c.Row, c.Col)
	}

	upd := selection.Set().Editing(nt.PosOf(c)).ForceEdit(force)
	if !eng.model.IsWithinSelection(c) {
		upd = upd.Cell(c)
	}
	eng.model.Apply(upd)
	return true
}

// HandleEditCommit stores val for the cell being edited and leaves edit mode.
func (eng *Engine) HandleEditCommit(val nt.Value) error {
	return eng.commit(valueEditor{val: val})
}

// HandleEditRevert restores the content captured at edit start and leaves edit mode.
func (eng *Engine) HandleEditRevert() error {

	st := eng.model.State()
	if !st.IsEditing() {
		return nil
	}
	at := st.Editing.Coord

	if eng.hooks.Revert != nil {
		err := eng.hooks.Revert(at.Row, at.Col, eng.initial)
		if err != nil {
			return errors.Wrapf(err, "failed to revert %d,%d", at.Row, at.Col)
		}
	}

	eng.logger.Info(eng.ctx, "edit reverted", "row", at.Row, "col", at.Col)
	eng.model.Apply(selection.Set().Cell(at).Editing(nt.Pos{}).ForceEdit(false))
	return nil
}

// HandleCopy snapshots the selection, returning false while editing or with nothing selected.
func (eng *Engine) HandleCopy() bool {

	st := eng.model.State()
	if st.IsEditing() || st.Empty() {
		return false
	}

	snap := clip.Collect(eng.grid, st.Range, eng.hooks.Content)
	eng.model.SetCopied(snap)
	if eng.hooks.Copied != nil {
		eng.hooks.Copied(snap)
	}

	eng.logger.Info(eng.ctx, "copied", "cells", len(snap))
	return true
}

// HandleCut copies then clears the selection.
func (eng *Engine) HandleCut() error {

	if !eng.HandleCopy() {
		return nil
	}
	return eng.clear(eng.model.State().Range)
}

// HandlePaste hands the copied snapshot and the normalized selection to the paste hook.
func (eng *Engine) HandlePaste() error {

	st := eng.model.State()
	if st.IsEditing() || st.Empty() || eng.hooks.Paste == nil {
		return nil
	}

	lo, hi := st.Bounds()
	snap := eng.model.Copied()

	err := eng.hooks.Paste(snap, lo, hi)
	if err != nil {
		return errors.Wrapf(err, "failed to paste %d cells at %d,%d", len(snap), lo.Row, lo.Col)
	}

	eng.logger.Info(eng.ctx, "pasted", "cells", len(snap), "row", lo.Row, "col", lo.Col)
	return nil
}

// HandleRangeAnchor is a mouse-down on c; extend keeps the start corner.
func (eng *Engine) HandleRangeAnchor(c nt.Coord, extend bool) bool {

	if !eng.accepts(c) {
		return false
	}

	st := eng.model.State()
	same := st.Editing.Is(c)

	editing := nt.Pos{}
	if same {
		editing = st.Editing
	}

	start := nt.PosOf(c)
	if extend && st.Start.Set {
		start = st.Start
	}

	eng.model.Apply(selection.Set().
		Selecting(!same).
		Start(start).
		End(nt.PosOf(c)).
		Editing(editing).
		ForceEdit(same))

	eng.session.Release()
	eng.session = selection.Acquire(eng.hooks.Capture)
	return true
}

// HandleRangeExtend moves the end corner to c while dragging.
func (eng *Engine) HandleRangeExtend(c nt.Coord) bool {

	st := eng.model.State()
	if !st.Selecting || st.IsEditing() || !eng.accepts(c) {
		return false
	}

	eng.model.Apply(selection.Set().End(nt.PosOf(c)))
	return true
}

// HandleRangeRelease ends the drag gesture.
func (eng *Engine) HandleRangeRelease() {

	eng.model.Apply(selection.Set().Selecting(false))
	eng.session.Release()
	eng.session = nil
}

// HandleDoubleClick opens c with its content.
func (eng *Engine) HandleDoubleClick(c nt.Coord) bool {

	if !eng.accepts(c) {
		return false
	}
	return eng.HandleEditStart(c, true)
}

// HandleContextMenu passes a secondary click on c to the host.
func (eng *Engine) HandleContextMenu(c nt.Coord) {

	if !eng.accepts(c) || eng.hooks.ContextMenu == nil {
		return
	}

	cell, _ := eng.grid.Cell(c.Row, c.Col)
	eng.hooks.ContextMenu(cell, c.Row, c.Col)
}

// HandleOutsideClick ends a drag in progress, leaving the range, or resets otherwise.
func (eng *Engine) HandleOutsideClick() {

	if eng.cfg.DisablePageClick {
		return
	}

	if eng.model.State().Selecting {
		eng.HandleRangeRelease()
		return
	}
	eng.HandleBlur()
}

// HandleBlur resets when the grid loses focus.
func (eng *Engine) HandleBlur() {

	eng.model.Reset()
	eng.session.Release()
	eng.session = nil
}

// Close releases any gesture still held.
func (eng *Engine) Close() {

	eng.session.Release()
	eng.session = nil
}

// unexported

func (eng *Engine) shortcut(st selection.State, key Key) (Result, error) {

	if !eng.cfg.ClipboardKeys || st.IsEditing() {
		return Ignored, nil
	}

	switch key.Intent {
	case Copy:
		eng.HandleCopy()
		return Handled, nil
	case Cut:
		return Handled, eng.HandleCut()
	case Paste:
		return Handled, eng.HandlePaste()
	}
	return Ignored, nil
}

func (eng *Engine) selectedKey(st selection.State, key Key) (Result, error) {

	switch {
	case key.Arrow(), key.Intent == Tab:
		eng.HandleDirectionalIntent(key.Intent, key.Shift)
		return Handled, nil

	case key.Intent == Delete:
		return Handled, eng.clear(st.Range)
	}

	cell, ok := eng.grid.Cell(st.Start.Row, st.Start.Col)
	if !ok || cell.ReadOnly {
		return Ignored, nil
	}

	switch {
	case key.Intent == Enter:
		eng.HandleEditStart(st.Start.Coord, true)
		return Handled, nil

	case key.Intent == Char && EditStart(key.Rune):
		eng.HandleEditStart(st.Start.Coord, false)
		return Forward, nil
	}

	return Ignored, nil
}

func (eng *Engine) editingKey(st selection.State, key Key, ed Editor) (Result, error) {

	cell, _ := eng.grid.Cell(st.Editing.Row, st.Editing.Col)
	if cell.HasComponent && !cell.ForceComponent {
		return eng.componentKey(key, ed)
	}

	switch {
	case key.Intent == Escape:
		return Handled, eng.HandleEditRevert()

	case key.Intent == Enter, key.Intent == Tab, key.Arrow():
		return Handled, eng.commitAndMove(key, ed)
	}

	return Forward, nil
}

func (eng *Engine) componentKey(key Key, ed Editor) (Result, error) {

	comp, ok := ed.(Component)
	if ok && comp.Consume(key) {
		return Handled, nil
	}

	switch key.Intent {
	case Escape:
		return Handled, eng.HandleEditRevert()
	case Enter, Tab:
		return Handled, eng.commitAndMove(key, ed)
	}

	// suppressed, the component owns the keystroke
	return Handled, nil
}

func (eng *Engine) commitAndMove(key Key, ed Editor) error {

	err := eng.commit(ed)
	if err != nil {
		return err
	}

	eng.HandleDirectionalIntent(key.Intent, key.Shift)
	return nil
}

func (eng *Engine) commit(ed Editor) error {

	st := eng.model.State()
	if !st.IsEditing() {
		return nil
	}
	at := st.Editing.Coord

	val := eng.initial
	if ed != nil {
		val = ed.Value()
	}

	if eng.hooks.Commit != nil {
		err := eng.hooks.Commit(at.Row, at.Col, val)
		if err != nil {
			return errors.Wrapf(err, "failed to commit %d,%d", at.Row, at.Col)
		}
	}

	eng.logger.Info(eng.ctx, "edit committed", "row", at.Row, "col", at.Col)
	eng.model.Apply(selection.Set().Editing(nt.Pos{}).ForceEdit(false))
	return nil
}

func (eng *Engine) clear(rng nt.Range) error {

	coords := clip.Collect(eng.grid, rng, nil).Coords()
	if len(coords) == 0 || eng.hooks.Clear == nil {
		return nil
	}

	err := eng.hooks.Clear(coords)
	if err != nil {
		return errors.Wrapf(err, "failed to clear %d cells", len(coords))
	}

	eng.logger.Info(eng.ctx, "cleared", "cells", len(coords))
	return nil
}

// navigate moves to the next navigable cell, or extends the end corner with shift.
func (eng *Engine) navigate(off nt.Offset, jumpRow, shift bool) bool {

	st := eng.model.State()
	if off.Zero() || !st.Start.Set {
		return false
	}

	if shift && !jumpRow {
		return eng.extend(st, off)
	}

	to, ok := Search(eng.grid, eng.hooks.Navigable, st.Start.Coord, off, jumpRow)
	if !ok {
		return false
	}

	eng.model.Apply(selection.Set().Cell(to).Editing(nt.Pos{}))
	return true
}

// extend steps the end corner without searching.
// The column is clamped to the grid and the row is not.
// Todo: clamp the row too once callers no longer rely on running past the data
func (eng *Engine) extend(st selection.State, off nt.Offset) bool {

	lastCol := eng.grid.Cols() - 1
	if lastCol < 0 {
		return false
	}

	end := st.End
	if !end.Set {
		end = st.Start
	}

	row := end.Row + off.Rows
	col := min(lastCol, max(0, end.Col+off.Cols))

	eng.model.Apply(selection.Set().
		Start(st.Start).
		End(nt.At(row, col)).
		Editing(nt.Pos{}))
	return true
}

func (eng *Engine) accepts(c nt.Coord) bool {
	cell, ok := eng.grid.Cell(c.Row, c.Col)
	return ok && !cell.DisableEvents
}

type valueEditor struct {
	val nt.Value
}

func (ed valueEditor) Value() nt.Value {
	return ed.val
}
