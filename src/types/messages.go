// messages.go - Bubble Tea messages shared across component packages.
// Component-private messages (send/upload results) stay unexported inside
// their own packages; only messages that cross a package boundary live
// here.

package types

// AlertMsg asks the root app model to open a blocking alert modal. Used
// for user-facing failures that must interrupt (case creation, document
// upload); chat failures never alert, they degrade to an inline message.
type AlertMsg struct {
	Message string
}

// StatusMsg updates the transient status line in the footer.
type StatusMsg struct {
	Message string
}
