package web

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/Shivanand-hulikatti/activity-signup/internal/view"
)

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Mergington High School Activities</title>
  <style>
    body { font-family: Arial, sans-serif; max-width: 1200px; margin: 0 auto; padding: 20px; color: #333; }
    main { display: flex; flex-wrap: wrap; gap: 30px; }
    section { flex: 1; min-width: 300px; }
    .activity-card { border: 1px solid #ddd; border-radius: 5px; padding: 15px; margin-bottom: 15px; }
    .participant-list { padding-left: 18px; }
    .participant-remove-form { display: inline; margin-left: 8px; }
    .participant-empty { color: #777; font-style: italic; }
    .success { background: #e8f5e9; color: #2e7d32; padding: 10px; }
    .error { background: #ffebee; color: #c62828; padding: 10px; }
    .hidden { display: none; }
  </style>
</head>
<body>
  <header>
    <h1>Mergington High School</h1>
    <h2>Extracurricular Activities</h2>
  </header>
  <main>
`

const pageFoot = `  </main>
  <footer>
    <p>&copy; Mergington High School</p>
  </footer>
</body>
</html>
`

// page renders the whole document from a controller snapshot.
func page(snap view.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		if err := activitiesSection(snap).Render(ctx, w); err != nil {
			return err
		}
		if err := signupSection(snap).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageFoot)
		return err
	})
}

func activitiesSection(snap view.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `    <section id="activities-container">
      <h3>Available Activities</h3>
      <form method="post" action="`+refreshPath+`"><button type="submit">Refresh</button></form>
      <div id="activities-list">
`); err != nil {
			return err
		}
		if err := templ.Raw(snap.ListHTML).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "      </div>\n    </section>\n")
		return err
	})
}

func signupSection(snap view.Snapshot) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `    <section id="signup-container">
      <h3>Sign Up for an Activity</h3>
      <form id="signup-form" method="post" action="`+signupPath+`">
        <div class="form-group">
          <label for="email">Student Email:</label>
          <input type="email" id="email" name="`+view.FieldEmail+`" required placeholder="your-email@mergington.edu" value="`+templ.EscapeString(snap.Form.Email)+`">
        </div>
        <div class="form-group">
          <label for="activity">Select Activity:</label>
          <select id="activity" name="`+view.FieldActivity+`" required>
            <option value="">-- Select an activity --</option>
`); err != nil {
			return err
		}
		for _, opt := range snap.Options {
			if err := selectOption(opt, opt.Value == snap.Form.Activity).Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `          </select>
        </div>
        <button type="submit">Sign Up</button>
      </form>
`); err != nil {
			return err
		}
		if err := statusMessage(snap.Message).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "    </section>\n")
		return err
	})
}

func selectOption(opt view.SelectOption, selected bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		attrs := ""
		if selected {
			attrs = " selected"
		}
		_, err := io.WriteString(w, `            <option value="`+templ.EscapeString(opt.Value)+`"`+attrs+">"+templ.EscapeString(opt.Label)+"</option>\n")
		return err
	})
}

func statusMessage(msg view.StatusMessage) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `      <div id="message" class="`+messageClass(msg)+`">`+templ.EscapeString(msg.Text)+"</div>\n")
		return err
	})
}

// messageClass is the kind class plus "hidden" while the message is not shown.
func messageClass(msg view.StatusMessage) string {
	var classes []any
	if msg.Kind != "" {
		classes = append(classes, string(msg.Kind))
	}
	classes = append(classes, templ.KV("hidden", !msg.Visible))
	return templ.Classes(classes...).String()
}
