package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aixmultimodal/msgboard/internal/service"
)

type boardTab int

const (
	tabMessages boardTab = iota
	tabUsers
)

type composeStage int

const (
	composeNone composeStage = iota
	composeMessage
	composeUser
)

// boardModel renders the two synchronized collections and drives the sync
// client from key presses. All collection data comes from the client's
// state snapshot; the model never keeps its own copy of a record.
type boardModel struct {
	ctx     context.Context
	client  *service.SyncClient
	version string

	tab        boardTab
	idx        int
	spinner    spinner.Model
	refreshing bool
	status     string

	stage        composeStage
	messageInput textinput.Model
	userInputs   []textinput.Model
	userFocus    int
	sending      bool

	quitByUser bool
}

func newBoardModel(ctx context.Context, client *service.SyncClient, version string) boardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return boardModel{
		ctx:        ctx,
		client:     client,
		version:    version,
		spinner:    s,
		refreshing: true,
	}
}

func (m boardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRefresh())
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshDoneMsg:
		m.refreshing = false
		m.clampCursor()
		return m, nil
	case messageSentMsg:
		m.sending = false
		if msg.err != nil {
			// Draft stays in the input so the user can retry.
			return m, nil
		}
		m.stage = composeNone
		m.status = "Message sent"
		m.clampCursor()
		return m, m.cmdClearStatus()
	case userCreatedMsg:
		m.sending = false
		if msg.err != nil {
			return m, nil
		}
		m.stage = composeNone
		m.status = "User created"
		m.clampCursor()
		return m, m.cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.stage != composeNone {
			return m.updateCompose(msg)
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.forceQuit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.stage != composeNone {
		return m.updateCompose(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < m.listLen()-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.left, keys.right, keys.tab):
		m.switchTab()
	case key.Matches(keyMsg, keys.add):
		m.startCompose()
		return m, nil
	case key.Matches(keyMsg, keys.refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, tea.Batch(m.spinner.Tick, m.cmdRefresh())
	case key.Matches(keyMsg, keys.copy):
		return m.copySelection()
	}

	return m, nil
}

func (m *boardModel) switchTab() {
	if m.tab == tabMessages {
		m.tab = tabUsers
	} else {
		m.tab = tabMessages
	}
	m.idx = 0
}

func (m *boardModel) listLen() int {
	state := m.client.State()
	if m.tab == tabMessages {
		return len(state.Messages)
	}
	return len(state.Users)
}

func (m *boardModel) clampCursor() {
	if n := m.listLen(); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *boardModel) startCompose() {
	state := m.client.State()

	if m.tab == tabMessages {
		input := textinput.New()
		input.Placeholder = "Type a message"
		input.Width = 50
		input.SetValue(state.DraftMessage)
		input.Focus()

		m.messageInput = input
		m.stage = composeMessage
		return
	}

	username := textinput.New()
	username.Placeholder = "Username"
	username.Width = 40
	username.SetValue(state.DraftUsername)
	username.Focus()

	email := textinput.New()
	email.Placeholder = "Email"
	email.Width = 40
	email.SetValue(state.DraftEmail)

	m.userInputs = []textinput.Model{username, email}
	m.userFocus = 0
	m.stage = composeUser
}

func (m boardModel) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.stage == composeMessage {
		return m.updateComposeMessage(msg)
	}
	return m.updateComposeUser(msg)
}

func (m boardModel) updateComposeMessage(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.stage = composeNone
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.sending {
				return m, nil
			}
			draft := m.messageInput.Value()
			if strings.TrimSpace(draft) == "" {
				return m, nil
			}
			m.sending = true
			return m, m.cmdSendMessage(draft)
		}
	}

	var cmd tea.Cmd
	m.messageInput, cmd = m.messageInput.Update(msg)
	return m, cmd
}

func (m boardModel) updateComposeUser(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.stage = composeNone
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.userInputs[m.userFocus].Blur()
			m.userFocus = (m.userFocus + 1) % len(m.userInputs)
			m.userInputs[m.userFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.userInputs[m.userFocus].Blur()
			m.userFocus = (m.userFocus - 1 + len(m.userInputs)) % len(m.userInputs)
			m.userInputs[m.userFocus].Focus()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.sending {
				return m, nil
			}
			username := m.userInputs[0].Value()
			email := m.userInputs[1].Value()
			if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" {
				return m, nil
			}
			m.sending = true
			return m, m.cmdCreateUser(username, email)
		}
	}

	var cmd tea.Cmd
	m.userInputs[m.userFocus], cmd = m.userInputs[m.userFocus].Update(msg)
	return m, cmd
}

func (m boardModel) copySelection() (tea.Model, tea.Cmd) {
	state := m.client.State()

	var text string
	switch m.tab {
	case tabMessages:
		if m.idx >= len(state.Messages) {
			return m, nil
		}
		text = state.Messages[m.idx].Content
	case tabUsers:
		if m.idx >= len(state.Users) {
			return m, nil
		}
		text = state.Users[m.idx].Email
	}

	if err := clipboard.WriteAll(text); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return m, m.cmdClearStatus()
	}
	m.status = "Copied"
	return m, m.cmdClearStatus()
}

func (m boardModel) cmdRefresh() tea.Cmd {
	return func() tea.Msg {
		return refreshDoneMsg{err: m.client.Refresh(m.ctx)}
	}
}

func (m boardModel) cmdSendMessage(draft string) tea.Cmd {
	return func() tea.Msg {
		return messageSentMsg{err: m.client.SubmitMessage(m.ctx, draft)}
	}
}

func (m boardModel) cmdCreateUser(username, email string) tea.Cmd {
	return func() tea.Msg {
		return userCreatedMsg{err: m.client.SubmitUser(m.ctx, username, email)}
	}
}

func (m boardModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m boardModel) View() string {
	if m.stage == composeMessage {
		return m.viewComposeMessage()
	}
	if m.stage == composeUser {
		return m.viewComposeUser()
	}
	return m.viewBoard()
}

func (m boardModel) viewBoard() string {
	state := m.client.State()

	header := titleStyle.Render("AIxMultimodal Board " + m.version)
	if state.Loading || m.refreshing {
		header += "  " + m.spinner.View()
	}

	tabs := m.renderTabs(len(state.Messages), len(state.Users))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(tabs)
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if m.tab == tabMessages {
		m.renderMessages(&b, state)
	} else {
		m.renderUsers(&b, state)
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if state.LastError != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(state.LastError))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("a add  r refresh  c copy  tab switch  q quit"))

	return appStyle.Render(b.String())
}

func (m boardModel) renderTabs(messages, users int) string {
	messagesTab := fmt.Sprintf("Messages (%d)", messages)
	usersTab := fmt.Sprintf("Users (%d)", users)

	if m.tab == tabMessages {
		return activeTabStyle.Render(messagesTab) + "   " + tabStyle.Render(usersTab)
	}
	return tabStyle.Render(messagesTab) + "   " + activeTabStyle.Render(usersTab)
}

func (m boardModel) renderMessages(b *strings.Builder, state service.ClientState) {
	if len(state.Messages) == 0 {
		b.WriteString("No messages yet\n")
		return
	}

	for i, message := range state.Messages {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		fmt.Fprintf(b, "%s[%s] %s: %s\n",
			cursor,
			shortTimestamp(message.Timestamp),
			message.Sender,
			fitText(message.Content, 60),
		)
	}
}

func (m boardModel) renderUsers(b *strings.Builder, state service.ClientState) {
	if len(state.Users) == 0 {
		b.WriteString("No users yet\n")
		return
	}

	for i, user := range state.Users {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		fmt.Fprintf(b, "%s%s <%s>\n", cursor, user.Username, user.Email)
	}
}

func (m boardModel) viewComposeMessage() string {
	state := m.client.State()

	out := viewTitle("New message")
	out += "\n"
	out += "Message: [" + m.messageInput.View() + "]\n\n"
	if m.sending {
		out += m.spinner.View() + " sending...\n\n"
	}
	if state.LastError != "" {
		out += errorStyle.Render(state.LastError) + "\n\n"
	}
	out += helpStyle.Render("enter send  esc cancel")
	return appStyle.Render(out)
}

func (m boardModel) viewComposeUser() string {
	state := m.client.State()

	out := viewTitle("New user")
	out += "\n"
	out += "Username: [" + m.userInputs[0].View() + "]\n"
	out += "Email:    [" + m.userInputs[1].View() + "]\n\n"
	if m.sending {
		out += m.spinner.View() + " sending...\n\n"
	}
	if state.LastError != "" {
		out += errorStyle.Render(state.LastError) + "\n\n"
	}
	out += helpStyle.Render("enter save  tab next field  esc cancel")
	return appStyle.Render(out)
}
