package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pwnwatch-hq/pwnwatch/internal/domain"
	"github.com/pwnwatch-hq/pwnwatch/internal/render"
)

func printBreaches(w io.Writer, breaches []domain.Breach, format string) error {
	switch format {
	case "json":
		if breaches == nil {
			breaches = []domain.Breach{}
		}
		return printJSON(w, breaches)
	case "pretty":
		if len(breaches) == 0 {
			_, err := fmt.Fprintln(w, "no breaches found")
			return err
		}
		for i, b := range breaches {
			if i > 0 {
				fmt.Fprintln(w)
			}
			printBreach(w, b)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printBreach(w io.Writer, b domain.Breach) {
	fmt.Fprintf(w, "%s%s\n", b.Name, breachTags(b))
	if b.Title != nil {
		fmt.Fprintf(w, "  Title:    %s\n", *b.Title)
	}
	if b.Domain != nil {
		fmt.Fprintf(w, "  Domain:   %s\n", *b.Domain)
	}
	if b.BreachDate != nil {
		fmt.Fprintf(w, "  Breached: %s\n", *b.BreachDate)
	}
	if b.AddedDate != nil {
		fmt.Fprintf(w, "  Added:    %s\n", *b.AddedDate)
	}
	if b.PwnCount != nil {
		fmt.Fprintf(w, "  Accounts: %d\n", *b.PwnCount)
	}
	if len(b.DataClasses) > 0 {
		fmt.Fprintf(w, "  Data:     %s\n", strings.Join(b.DataClasses, ", "))
	}
	if b.Description != nil {
		if text, err := render.Text(*b.Description); err == nil && text != "" {
			fmt.Fprintf(w, "  %s\n", text)
		}
	}
}

// breachTags renders the boolean markers shown next to a breach name.
// Verification defaults to trusted, so only the negative is called out.
func breachTags(b domain.Breach) string {
	var tags []string
	if b.IsVerified != nil && !*b.IsVerified {
		tags = append(tags, "[unverified]")
	}
	if b.IsSensitive != nil && *b.IsSensitive {
		tags = append(tags, "[sensitive]")
	}
	if b.IsRetired != nil && *b.IsRetired {
		tags = append(tags, "[retired]")
	}
	if len(tags) == 0 {
		return ""
	}
	return " " + strings.Join(tags, " ")
}

func printPastes(w io.Writer, pastes []domain.Paste, format string) error {
	switch format {
	case "json":
		if pastes == nil {
			pastes = []domain.Paste{}
		}
		return printJSON(w, pastes)
	case "pretty":
		if len(pastes) == 0 {
			_, err := fmt.Fprintln(w, "no pastes found")
			return err
		}
		for i, p := range pastes {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s\n", p.Key())
			if p.Title != nil && *p.Title != "" {
				fmt.Fprintf(w, "  Title:  %s\n", *p.Title)
			}
			if p.Date != nil {
				fmt.Fprintf(w, "  Date:   %s\n", *p.Date)
			}
			fmt.Fprintf(w, "  Emails: %d\n", p.EmailCount)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printDataClasses(w io.Writer, classes []domain.DataClass, format string) error {
	switch format {
	case "json":
		if classes == nil {
			classes = []domain.DataClass{}
		}
		return printJSON(w, classes)
	case "pretty":
		for _, c := range classes {
			fmt.Fprintln(w, c)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
