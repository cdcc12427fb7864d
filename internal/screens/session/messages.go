package session

import sess "github.com/abhisek/merrymath/internal/session"

// advanceMsg fires once the feedback pause for an answer has elapsed.
type advanceMsg struct {
	Ticket sess.AdvanceTicket
}
