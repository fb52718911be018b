package view

import (
	"strconv"
	"strings"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
)

// DefaultRemoveAction is the form action of rendered removal controls.
const DefaultRemoveAction = "/participants/remove"

// RemoveControlClass marks the element that carries removal data.
const RemoveControlClass = "participant-remove"

const (
	loadingNotice        = "<p>Loading activities...</p>"
	loadFailedNotice     = "<p>Failed to load activities. Please try again later.</p>"
	emptyParticipantItem = `<li class="participant-empty">No participants yet</li>`
)

// RenderActivities renders one card per activity in set order and returns the
// list markup together with the matching selector options.
func RenderActivities(set model.ActivitySet, removeAction string) (string, []SelectOption) {
	var b strings.Builder
	options := make([]SelectOption, 0, len(set))
	for _, activity := range set {
		renderCard(&b, activity, removeAction)
		options = append(options, SelectOption{Value: activity.Name, Label: activity.Name})
	}
	return b.String(), options
}

func renderCard(b *strings.Builder, a model.Activity, removeAction string) {
	name := EscapeAttr(a.Name)

	b.WriteString(`<article class="activity-card h-event">` + "\n")
	b.WriteString(`  <h4 class="p-name">` + name + "</h4>\n")
	b.WriteString(`  <p class="p-summary">` + EscapeAttr(a.Description) + "</p>\n")
	b.WriteString(`  <p><strong>Schedule:</strong> ` + EscapeAttr(a.Schedule) + "</p>\n")
	b.WriteString(`  <p><strong>Availability:</strong> ` + strconv.Itoa(a.SpotsLeft()) + " spots left</p>\n")
	b.WriteString(`  <section class="participants" aria-label="Participants for ` + name + `">` + "\n")
	b.WriteString(`    <h5>Participants (` + strconv.Itoa(len(a.Participants)) + ")</h5>\n")
	b.WriteString(`    <ul class="participant-list">` + "\n")
	if len(a.Participants) == 0 {
		b.WriteString("      " + emptyParticipantItem + "\n")
	}
	for _, email := range a.Participants {
		b.WriteString("      ")
		renderParticipant(b, a.Name, email, removeAction)
		b.WriteString("\n")
	}
	b.WriteString("    </ul>\n")
	b.WriteString("  </section>\n")
	b.WriteString("</article>\n")
}

func renderParticipant(b *strings.Builder, activity, email, removeAction string) {
	act := EscapeAttr(activity)
	addr := EscapeAttr(email)

	b.WriteString(`<li class="h-card">`)
	b.WriteString(`<a class="u-email" href="mailto:` + addr + `" aria-label="Email ` + addr + `">` + EscapeAttr(MaskEmail(email)) + `</a>`)
	b.WriteString(`<form class="participant-remove-form" method="post" action="` + EscapeAttr(removeAction) + `">`)
	b.WriteString(`<input type="hidden" name="activity" value="` + act + `">`)
	b.WriteString(`<input type="hidden" name="email" value="` + addr + `">`)
	b.WriteString(`<button type="submit" class="` + RemoveControlClass + `" data-activity="` + act + `" data-email="` + addr + `"`)
	b.WriteString(` aria-label="Remove ` + addr + ` from ` + act + `">Remove</button>`)
	b.WriteString(`</form></li>`)
}
