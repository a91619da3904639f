package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
	"strings"

	"ShotFormGolang/internal/entity"
)

type ItfSmtp interface {
	SendAnalysisReport(userEmail string, analysis entity.Analysis) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{auth: auth, mail: mail, host: host, addr: host + ":587"}
}

func (s *smtp) SendAnalysisReport(userEmail string, analysis entity.Analysis) error {
	to := []string{userEmail}

	var body strings.Builder
	fmt.Fprintf(&body, "Your shooting form analysis from %s\r\n\r\n", analysis.CreatedAt.Format("Jan 2, 2006"))
	fmt.Fprintf(&body, "Overall score: %d/100 (%s)\r\n\r\n", analysis.Result.OverallScore, analysis.Result.Category)

	for _, m := range analysis.Result.Metrics {
		fmt.Fprintf(&body, "- %s: %.0f %s (optimal %.0f-%.0f) [%s]\r\n",
			m.Name, m.Value, m.Unit, m.OptimalMin, m.OptimalMax, m.Status)
	}

	if len(analysis.Result.PriorityIssues) > 0 {
		body.WriteString("\r\nWhat to work on first:\r\n")
		for _, issue := range analysis.Result.PriorityIssues {
			fmt.Fprintf(&body, "%d. %s - %s\r\n", issue.Rank, issue.Title, issue.Recommendation)
		}
	}

	message := []byte(fmt.Sprintf("To: %s\r\nSubject: Your Shooting Form Report\r\n\r\n%s",
		userEmail, body.String()))

	if err := smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message); err != nil {
		return err
	}

	return nil
}
