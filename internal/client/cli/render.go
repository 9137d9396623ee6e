package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/blindmatch/internal/client/models"
)

func printUser(w io.Writer, u *models.User) {
	if u == nil {
		fmt.Fprintln(w, "No profile loaded.")
		return
	}
	fmt.Fprintf(w, "Name:  %s\nEmail: %s\n", u.Name, u.Email)
	if u.Bio != "" {
		fmt.Fprintf(w, "Bio:   %s\n", u.Bio)
	}
	if len(u.Interests) > 0 {
		fmt.Fprintf(w, "Interests: %s\n", strings.Join(u.Interests, ", "))
	}
	if l := u.Location; l != nil {
		fmt.Fprintf(w, "Looking within %.0f km of (%.4f, %.4f), ages %d-%d\n",
			l.Radius, l.Latitude, l.Longitude, l.MinAge, l.MaxAge)
	}
}

// printMatch prints what the reveal gate allows for m.
func printMatch(w io.Writer, m *models.Match) {
	if m == nil {
		return
	}
	v := m.Display()
	fmt.Fprintf(w, "%s\n%s\n", v.Name, v.Bio)
	if v.Photo != "" {
		fmt.Fprintf(w, "Photo: %s\n", v.Photo)
	}
	if len(v.Interests) > 0 {
		fmt.Fprintf(w, "Interests: %s\n", strings.Join(v.Interests, ", "))
	}
	if m.ExpiresAt != nil {
		fmt.Fprintf(w, "Expires: %s\n", m.ExpiresAt.Local().Format(time.DateTime))
	}
}

func printMessage(w io.Writer, m models.Message, selfID string) {
	who := "them"
	if selfID != "" && m.SenderID == selfID {
		who = "you"
	}
	fmt.Fprintf(w, "[%s] %s: %s\n", m.CreatedAt.Local().Format(time.Kitchen), who, m.Content)
}
