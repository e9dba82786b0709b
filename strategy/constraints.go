package strategy

import (
	"fmt"
	"time"

	"github.com/rustyeddy/cargorisk/cargo"
	"github.com/rustyeddy/cargorisk/market"
)

// Mode controls how constraint breaches are handled during selection.
type Mode int

const (
	// Strict rejects breaching candidates; the optimizer re-selects the
	// next-best feasible option (or cancels when none remains).
	Strict Mode = iota
	// Advisory keeps the best unconstrained choice and attaches the
	// breaches as flags on the decision.
	Advisory
)

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Advisory:
		return "advisory"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Violation codes.
const (
	CodeNominationDeadline = "NOMINATION_DEADLINE"
	CodeBookingWindow      = "BOOKING_WINDOW"
	CodeOptionDeadline     = "OPTION_DEADLINE"
)

// checkConstraints returns the nomination-deadline and booking-window
// breaches for committing to cp for period p on decisionDate.
// nominationLeadDays is the portfolio-wide minimum lead time.
func checkConstraints(p market.Period, cp cargo.Counterparty, decisionDate time.Time, nominationLeadDays int) []Violation {
	var out []Violation

	lead := int(p.Start.Sub(decisionDate).Hours() / 24)

	if lead < nominationLeadDays {
		out = append(out, Violation{
			Code: CodeNominationDeadline,
			Msg: fmt.Sprintf("period %s needs %d days lead, only %d remain",
				p.Label(), nominationLeadDays, lead),
		})
	}

	if w := cp.Window; w != nil && (lead < w.MinLeadDays || lead > w.MaxLeadDays) {
		out = append(out, Violation{
			Code: CodeBookingWindow,
			Msg: fmt.Sprintf("%s books %d-%d days ahead, period %s is %d days out",
				cp.Name, w.MinLeadDays, w.MaxLeadDays, p.Label(), lead),
		})
	}

	return out
}

// checkOptionDeadline flags a cancellation committed inside the option
// lead time. Nil when the commitment is timely.
func checkOptionDeadline(p market.Period, decisionDate time.Time, optionLeadDays int) *Violation {
	lead := int(p.Start.Sub(decisionDate).Hours() / 24)
	if lead >= optionLeadDays {
		return nil
	}
	return &Violation{
		Code: CodeOptionDeadline,
		Msg: fmt.Sprintf("option for period %s needs %d days lead, only %d remain",
			p.Label(), optionLeadDays, lead),
	}
}
