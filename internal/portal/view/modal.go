package view

import "html/template"

// ModalState enumerates the modal's mutually exclusive display states
type ModalState int

const (
	ModalLoading ModalState = iota
	ModalContent
	ModalError
)

// Modal drives the detail overlay. Exactly one of the loading spinner,
// the content block, or the error block is visible at a time.
type Modal struct {
	state   ModalState
	content template.HTML
	message string
}

// NewModal starts in the loading state
func NewModal() *Modal {
	return &Modal{state: ModalLoading}
}

// ShowContent switches to the content state
func (m *Modal) ShowContent(html template.HTML) {
	m.state = ModalContent
	m.content = html
	m.message = ""
}

// ShowError switches to the error state with the given message
func (m *Modal) ShowError(message string) {
	m.state = ModalError
	m.content = ""
	m.message = message
}

// Reset returns the modal to the loading state
func (m *Modal) Reset() {
	m.state = ModalLoading
	m.content = ""
	m.message = ""
}

// State returns the current display state
func (m *Modal) State() ModalState { return m.state }

// IsLoading reports the loading state, used by the modal template
func (m *Modal) IsLoading() bool { return m.state == ModalLoading }

// IsError reports the error state
func (m *Modal) IsError() bool { return m.state == ModalError }

// Content returns the content block
func (m *Modal) Content() template.HTML { return m.content }

// Message returns the error message
func (m *Modal) Message() string { return m.message }
