package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/arshjul/yearwheel/internal/domain"
)

// FormatShareList renders share links with their expiry state.
func FormatShareList(shares []*domain.ShareLink, now time.Time) string {
	headers := []string{"ID", "NAME", "CODE", "VISIBILITY", "VIEWS", "EXPIRES", "STATE"}
	rows := make([][]string, 0, len(shares))

	for _, s := range shares {
		state := StyleGreen.Render("active")
		switch {
		case !s.IsActive:
			state = StyleDim.Render("revoked")
		case s.IsExpired(now):
			state = StyleRed.Render("expired")
		case s.NeedsRenewal(now):
			state = StyleYellow.Render("renew")
		}
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(s.Name),
			StyleBlue.Render(s.ShortCode),
			VisibilityPill(s.Visibility),
			fmt.Sprintf("%d", s.Stats.ViewCount),
			ExpiryStyled(s.ExpiresAt, now),
			state,
		})
	}

	return RenderBox("Share links", RenderTable(headers, rows))
}

// FormatShareCreated renders the one-time share key card shown right
// after creation. The key is never printed again.
func FormatShareCreated(s *domain.ShareLink, baseURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", Bold(s.Name))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Code:"), StyleBlue.Render(s.ShortCode))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Key: "), StyleYellow.Render(s.ShareKey))
	if baseURL != "" {
		fmt.Fprintf(&b, "%s  %s\n", Dim("URL: "), baseURL+"/s/"+s.ShortCode+"#"+s.ShareKey)
	}
	fmt.Fprintf(&b, "%s  %s\n\n", Dim("Until:"), s.ExpiresAt.Format("Jan 2, 2006"))
	b.WriteString(Dim("Store the key now. It is not retrievable later."))
	return RenderBox("Share created", b.String())
}
