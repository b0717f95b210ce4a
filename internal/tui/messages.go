package tui

type refreshDoneMsg struct {
	err error
}

type messageSentMsg struct {
	err error
}

type userCreatedMsg struct {
	err error
}

type clearStatusMsg struct{}
