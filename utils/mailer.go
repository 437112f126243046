package utils

import (
	"fmt"
	"strings"

	"plant-stock/config"

	"gopkg.in/gomail.v2"
)

type StockAlertItem struct {
	ItemCode      string
	DesignName    string
	CurrentStock  int
	MinStockAlert int
	Shortage      int
}

// SendStockAlertEmail mengirim email daftar produk yang stoknya
// sudah menyentuh batas minimum.
func SendStockAlertEmail(alerts []StockAlertItem) error {
	if config.SMTPSender == "" || len(config.AlertEmails) == 0 {
		return nil
	}
	if len(alerts) == 0 {
		return nil
	}

	var rows strings.Builder
	for _, a := range alerts {
		rows.WriteString(fmt.Sprintf(
			`<tr><td>%s</td><td>%s</td><td align="right">%d</td><td align="right">%d</td><td align="right">%d</td></tr>`,
			a.ItemCode, a.DesignName, a.CurrentStock, a.MinStockAlert, a.Shortage))
	}

	body := fmt.Sprintf(`
		<html>
			<body>
				<p>The following products are at or below their minimum stock level:</p>
				<table border="1" cellpadding="4" cellspacing="0">
					<tr><th>Item Code</th><th>Design Name</th><th>Current</th><th>Minimum</th><th>Shortage</th></tr>
					%s
				</table>
			</body>
		</html>
	`, rows.String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", config.AlertEmails...)
	msg.SetHeader("Subject", fmt.Sprintf("Low stock alert: %d product(s)", len(alerts)))
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
