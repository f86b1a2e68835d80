package ui

// PipelineMsg delivers one value emitted by the selector stage to the UI
// loop.
type PipelineMsg struct {
	Value any
}

// helpClosedMsg reports that the help pager exited.
type helpClosedMsg struct {
	err error
}
