package decision

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/RogueScr1be/fast-food-sub004/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

// Render formats one decision response for the terminal.
func Render(response domain.DecisionResponse, opts RenderOptions) (string, error) {
	return renderView(response, opts, newStyles()), nil
}

func renderView(response domain.DecisionResponse, opts RenderOptions, s styles) string {
	header := s.header.Render(opts.Now.Format("Mon Jan 2 15:04"))

	if response.DRMRecommended {
		lines := []string{
			s.rescue.Render("No dinner suggestion tonight"),
			header,
			s.section.Render(s.reason.Render(reasonText(response.Reason))),
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines := []string{
		s.title.Render("Tonight's dinner"),
		header,
	}

	switch payload := response.Decision.(type) {
	case domain.CookPayload:
		lines = append(lines,
			s.section.Render(s.meal.Render(payload.Title)),
			s.detail.Render(fmt.Sprintf("about %d minutes", payload.EstimatedMinutes)),
			s.section.Render(s.detail.Render(payload.Steps)),
			s.section.Render(s.meta.Render(fmt.Sprintf("event %s · context %s", payload.EventID, shortHash(payload.ContextHash)))),
		)
	case domain.ZeroCookPayload:
		lines = append(lines,
			s.section.Render(s.meal.Render(payload.Title)),
			s.detail.Render(fmt.Sprintf("about %d minutes", payload.EstimatedMinutes)),
			s.section.Render(s.detail.Render(payload.Steps)),
			s.section.Render(s.meta.Render(fmt.Sprintf("event %s · context %s", payload.EventID, shortHash(payload.ContextHash)))),
		)
	default:
		lines = append(lines, s.section.Render(s.meta.Render("nothing decided")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func reasonText(reason domain.DRMReason) string {
	switch reason {
	case domain.ReasonLowEnergy:
		return "Energy is low. Order in, reheat, or raid the freezer without guilt."
	case domain.ReasonCalendarConflict:
		return "The calendar is fighting you tonight. Grab something that needs no planning."
	case domain.ReasonLateNoAction:
		return "It's late. Skip cooking and keep it simple."
	case domain.ReasonTwoRejections:
		return "The last two suggestions didn't land. Take a night off from the picker."
	default:
		return string(reason)
	}
}

func shortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}

	return hash[:12]
}
