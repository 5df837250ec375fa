// Package sheet is the terminal host for the navigation engine.
// It classifies key and mouse input, keeps an editor open on the editing cell
// and renders the board with the selection.
package sheet

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"datasheet/board"
	"datasheet/board/piece"
	"datasheet/clip"
	nt "datasheet/entity"
	"datasheet/message"
	"datasheet/navigate"
	"datasheet/selection"
)

const (
	headerHeight = 2
	footerHeight = 1
	doubleClick  = 400 * time.Millisecond
)

// Store specifies where sheet data lives.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// Lines returns every row in grid order
	Lines() (lines []nt.Line, err error)
	// Set the value of one cell
	Set(row, col int, val nt.Value) (err error)
	// Clear cells
	Clear(coords []nt.Coord) (err error)
	// Paste a snapshot at start, within start..end
	Paste(snap clip.Snapshot, start, end nt.Coord) (err error)
}

// Layout specifies how store columns appear as board squares.
type Layout interface {
	// Files names and sizes each column
	Files() []board.File
	// Cell returns the descriptor shared by a column
	Cell(col int) nt.Cell
	// Piece wraps a value for display in a column
	Piece(col int, val nt.Value) board.Piece
	// Navigable decides whether arrows may land on a cell
	Navigable(cell nt.Cell, row, col int) bool
}

// Clipboard is the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type Config struct {
	Navigate navigate.Config `yaml:",inline"`
}

// Model is the bubbletea model for the sheet.
type Model struct {
	store     Store
	layout    Layout
	board     *board.Board
	model     *selection.Model
	engine    *navigate.Engine
	clipboard Clipboard
	keys      KeyMap
	help      help.Model

	editor navigate.Editor
	editAt nt.Coord

	capturing bool
	lastClick nt.Coord
	clickedAt time.Time
	now       func() time.Time

	offset      int
	width       int
	height      int
	notice      string
	errorString string

	ctx    context.Context
	logger nt.Logger
}

// New creates a sheet over store, laid out by layout.
// A nil clipboard keeps copies inside the sheet.
func (cfg *Config) New(ctx context.Context, store Store, layout Layout, cb Clipboard, lgr nt.Logger) (m *Model, err error) {

	brd, err := board.New(nil, layout.Files())
	if err != nil {
		return
	}

	m = &Model{
		store:     store,
		layout:    layout,
		board:     brd,
		clipboard: cb,
		keys:      NewKeyMap(cfg.Navigate.ClipboardKeys),
		help:      help.New(),
		now:       time.Now,
		ctx:       ctx,
		logger:    lgr,
	}

	m.model = selection.New(selection.NewInternal(m.follow))
	m.engine = cfg.Navigate.New(ctx, brd, m.model, m.hooks(), lgr)
	return
}

// State returns the selection and edit state
func (m *Model) State() selection.State {
	return m.model.State()
}

// Board returns the squares on display
func (m *Model) Board() *board.Board {
	return m.board
}

func (m *Model) Init() tea.Cmd {
	return message.LoadCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.LoadMsg:
		return m, m.load()

	case message.LinesMsg:
		err := m.replace(msg.Lines)
		if err != nil {
			return m, message.ErrorCmd(err)
		}
		if m.model.State().Empty() {
			m.home()
		}
		return m, nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.NoticeMsg:
		m.notice = msg.Text
		return m, nil

	case tea.KeyPressMsg:
		m.errorString = "" //Todo: find home for clear error
		m.notice = ""
		return m.press(msg)

	case tea.MouseClickMsg:
		return m, m.click(msg.Mouse())

	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		at, ok := m.hit(mouse.X, mouse.Y)
		if ok {
			m.engine.HandleRangeExtend(at)
		}
		return m, nil

	case tea.MouseReleaseMsg:
		m.engine.HandleRangeRelease()
		return m, nil

	case tea.BlurMsg:
		m.engine.HandleBlur()
		m.sync()
		return m, nil

	case tea.FocusMsg:
		if m.model.State().Empty() {
			m.home()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// Close releases a gesture still held
func (m *Model) Close() {
	m.engine.Close()
}

// unexported

func (m *Model) press(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	if key.Matches(msg, m.keys.Quit) {
		m.engine.Close()
		return m, tea.Quit
	}

	nk := m.keys.Classify(msg)
	if nk.Intent == navigate.Paste {
		err := m.pull()
		if err != nil {
			return m, message.ErrorCmd(err)
		}
	}

	m.sync()
	res, err := m.engine.HandleKey(nk, m.editor)
	m.sync()
	if err != nil {
		return m, message.ErrorCmd(err)
	}

	if res == navigate.Forward || res == navigate.Ignored && m.editor != nil {
		m.forward(msg, nk)
	}
	return m, nil
}

// forward hands a key to the open editor, a component takes it as classified
func (m *Model) forward(msg tea.KeyPressMsg, nk navigate.Key) {

	switch ed := m.editor.(type) {
	case piece.TextInput:
		m.editor = ed.Update(msg)
	case navigate.Component:
		ed.Consume(nk)
	}
}

// sync opens an editor when a cell enters edit mode and drops it when edit ends
func (m *Model) sync() {

	st := m.model.State()
	if !st.IsEditing() {
		m.editor = nil
		return
	}

	at := st.Editing.Coord
	if m.editor != nil && m.editAt == at {
		return
	}

	m.editAt = at
	m.editor = nil

	sq, ok := m.board.Square(at.Row, at.Col)
	if !ok {
		return
	}
	editable, ok := sq.Piece.(piece.Editable)
	if ok {
		m.editor = editable.Edit(st.ForceEdit)
	}
}

// home selects the first navigable cell
func (m *Model) home() {

	if m.board.Rows() == 0 || m.board.Cols() == 0 {
		return
	}

	at := nt.Coord{}
	cell, _ := m.board.Cell(0, 0)
	if !m.layout.Navigable(cell, 0, 0) {
		next, ok := navigate.Search(m.board, m.layout.Navigable, at, nt.Offset{Cols: 1}, true)
		if !ok {
			return
		}
		at = next
	}

	m.model.Apply(selection.Set().Cell(at))
}

// follow scrolls to keep the moving corner on the page
func (m *Model) follow(rng nt.Range) {

	pageSize := m.pageSize()
	if pageSize <= 0 {
		return
	}

	row := min(rng.End.Row, m.board.Rows()-1)
	if row < 0 {
		return
	}

	if row < m.offset {
		m.offset = row
	} else if row >= m.offset+pageSize {
		m.offset = row - pageSize + 1
	}
}

func (m *Model) pageSize() int {
	return m.height - headerHeight - footerHeight
}

// load returns a command fetching every line from the store
func (m *Model) load() tea.Cmd {
	return func() tea.Msg {
		lines, err := m.store.Lines()
		if err != nil {
			return message.ErrorMsg{Err: err}
		}
		return message.LinesMsg{Lines: lines}
	}
}

// reload refreshes the board after the store changes underneath it
func (m *Model) reload() (err error) {

	lines, err := m.store.Lines()
	if err != nil {
		return
	}
	err = m.replace(lines)
	return
}

func (m *Model) replace(lines []nt.Line) error {

	cols := len(m.layout.Files())
	ranks := make([]board.Rank, len(lines))

	for row, line := range lines {
		squares := make([]board.Square, cols)
		for col := range squares {
			var val nt.Value
			if col < len(line) {
				val = line[col]
			}
			squares[col] = board.Square{
				Piece: m.layout.Piece(col, val),
				Cell:  m.layout.Cell(col),
			}
		}
		ranks[row] = board.NewRank(squares)
	}

	return m.board.Replace(ranks)
}

// pull takes clipboard text copied elsewhere as the snapshot to paste
func (m *Model) pull() (err error) {

	if m.clipboard == nil || m.model.State().IsEditing() {
		return
	}

	text, err := m.clipboard.ReadAll()
	if err != nil {
		m.logger.Error(m.ctx, "failed to read clipboard", err)
		err = nil
		return
	}

	own, err := m.model.Copied().TSV()
	if err != nil {
		m.logger.Error(m.ctx, "failed to encode copied cells", err, "cells", len(m.model.Copied()))
		err = nil
	}
	if text == "" || text == own {
		return
	}

	snap, err := clip.ParseTSV(text)
	if err != nil {
		return
	}
	m.model.SetCopied(snap)
	return
}
