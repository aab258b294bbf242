/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ademuri/stream-history-tools/internal/history"
)

type SendEmailConfig struct {
	HistoryDir     string
	From           string
	To             string
	Types          []string
	Params         []map[string]string
	DryRun         bool
	SMTPUsername   string
	SMTPPassword   string
	SendgridApiKey string
	Start          time.Time
	End            time.Time
}

var emailCmd = &cobra.Command{
	Use:   "email <address> <analysis_name...> [date] [date]",
	Short: "Sends an email report",
	Long: `Emails analyses of your listening history to the specified address.
  <analysis_name> is one or more of: top-artists, top-albums, top-songs, new-artists, gaps.
  Optional date arguments can be provided at the end (e.g. '2023-01' or '2023-01 2023-06').
  If no dates are provided, defaults to the previous month.`,
	Args: cobra.MinimumNArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("from") == "" {
			return fmt.Errorf("required flag(s) \"from\" not set")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		to := args[0]
		rest := args[1:]

		// Date arguments sit at the end, after the analysis names.
		var dateArgs []string
		if len(rest) > 0 {
			_, err := parseSingleDatestring(rest[len(rest)-1])
			if err == nil {
				dateArgs = []string{rest[len(rest)-1]}
				rest = rest[:len(rest)-1]

				if len(rest) > 0 {
					_, err := parseSingleDatestring(rest[len(rest)-1])
					if err == nil {
						dateArgs = append([]string{rest[len(rest)-1]}, dateArgs...)
						rest = rest[:len(rest)-1]
					}
				}
			}
		}

		analysisTypes := rest
		if len(analysisTypes) == 0 {
			fmt.Println("Error: No analysis types specified")
			os.Exit(1)
		}

		var start, end time.Time
		var err error
		if len(dateArgs) > 0 {
			start, end, err = parseDateRangeFromArgs(dateArgs)
			if err != nil {
				fmt.Printf("Error parsing dates: %v\n", err)
				os.Exit(1)
			}
		} else {
			// Default to last month
			now := time.Now()
			start = time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
			end = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		}

		params, _ := cmd.Flags().GetStringArray("params")

		if len(params) > 0 && len(params) != len(analysisTypes) {
			fmt.Printf("Error: Number of --params flags (%d) must match number of reports (%d), or be 0.\n", len(params), len(analysisTypes))
			os.Exit(1)
		}

		structuredParams := make([]map[string]string, len(analysisTypes))
		for i, v := range params {
			pMap := make(map[string]string)
			if v != "" {
				pairs := strings.Split(v, ",")
				for _, pair := range pairs {
					kv := strings.SplitN(pair, "=", 2)
					if len(kv) == 2 {
						pMap[kv[0]] = kv[1]
					}
				}
			}
			structuredParams[i] = pMap
		}

		config := SendEmailConfig{
			HistoryDir:     viper.GetString("history"),
			From:           viper.GetString("from"),
			To:             to,
			Types:          analysisTypes,
			Params:         structuredParams,
			DryRun:         viper.GetBool("dryRun"),
			SMTPUsername:   viper.GetString("smtp_username"),
			SMTPPassword:   viper.GetString("smtp_password"),
			SendgridApiKey: viper.GetString("sendgrid_api_key"),
			Start:          start,
			End:            end,
		}
		err = sendEmail(config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(emailCmd)

	var dryRun bool
	emailCmd.Flags().BoolVarP(&dryRun, "dry_run", "n", false, "When true, just print instead of emailing")
	viper.BindPFlag("dryRun", emailCmd.Flags().Lookup("dry_run"))

	emailCmd.Flags().StringArray("params", nil, "Parameters for reports, matched by index (e.g. --params 'n=20')")
}

func sendEmail(config SendEmailConfig) error {
	actions := make([]Analyser, 0)
	for i, actionName := range config.Types {
		action, err := getActionFromName(actionName)
		if err != nil {
			return fmt.Errorf("Invalid analysis_name: %s", actionName)
		}

		if config.Params != nil && i < len(config.Params) {
			params := config.Params[i]
			if len(params) > 0 {
				if configurable, ok := action.(Configurable); ok {
					err := configurable.Configure(params)
					if err != nil {
						return fmt.Errorf("configuring %s (index %d): %w", actionName, i, err)
					}
				}
			}
		}

		actions = append(actions, action)
	}

	events, err := loadArchive(config.HistoryDir)
	if err != nil {
		return err
	}

	subject, out, err := generateEmailContent(config, actions, events)
	if err != nil {
		return err
	}

	if config.DryRun {
		fmt.Printf("Would have sent email: \nsubject: %s\n%s\n", subject, out)
		return nil
	}

	if config.SendgridApiKey != "" {
		from := mail.NewEmail("stream-history-tools", config.From)
		to := mail.NewEmail("", config.To)
		message := mail.NewSingleEmail(from, subject, to, "", out)
		client := sendgrid.NewSendClient(config.SendgridApiKey)
		response, err := client.Send(message)
		if err != nil {
			return fmt.Errorf("sendEmail: %w", err)
		}
		if response.StatusCode >= 300 {
			return fmt.Errorf("sendEmail: sendgrid returned %d: %s", response.StatusCode, response.Body)
		}
		return nil
	}

	if config.SMTPUsername == "" || config.SMTPPassword == "" {
		return fmt.Errorf("sendgrid_api_key, or smtp_username and smtp_password, must be set in order to send emails")
	}

	msg := "From: stream-history-tools <" + config.From + ">\r\n" +
		"To: " + config.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		out

	auth := smtp.PlainAuth("", config.SMTPUsername, config.SMTPPassword, "smtp.gmail.com")
	err = smtp.SendMail("smtp.gmail.com:587", auth, config.From, []string{config.To}, []byte(msg))
	if err != nil {
		return fmt.Errorf("sendEmail: %w", err)
	}

	return nil
}

func generateEmailContent(config SendEmailConfig, actions []Analyser, events []history.PlayEvent) (subject string, body string, err error) {
	out := `
<html>
  <head>
<style>
td {
  padding: 0.1em 0.2em;
}
table, th, td {
  border: 1px solid black;
  border-collapse: collapse;
}
</style>
  </head>
  <body>
`
	for _, action := range actions {
		analysis, err := action.GetResults(events, config.Start, config.End)
		if err == ErrSkipReport {
			continue
		}
		if err != nil {
			return "", "", fmt.Errorf("getting results for %s: %w", action.GetName(), err)
		}

		out += `
		<div>
`
		out += fmt.Sprintf("<h2>%s %s to %s:</h2>\n", action.GetName(), config.Start.Format("2006-01-02"), config.End.Format("2006-01-02"))
		if analysis.BodyOverride != "" {
			out += "<pre>" + analysis.BodyOverride + "</pre>\n"
		} else if len(analysis.results) <= 1 {
			out += "<div>No plays found.</div>\n"
		} else {
			out += `
			<table>
				<thead>
					<tr>
`
			for _, header := range analysis.results[0] {
				out += fmt.Sprintf("<th>%s</th>", header)
			}
			out += `				</tr>
			</thead>`

			for _, row := range analysis.results[1:] {
				out += "<tr>\n"
				for _, column := range row {
					out += fmt.Sprintf("<td>%s</td>\n", column)
				}
				out += "</tr>\n"

			}
			out += `
				</tbody>
			</table>
`
		}
		out += fmt.Sprintf(`<div>%s</div>
		</div>`, analysis.summary)
	}

	subject = fmt.Sprintf("Listening report for %s to %s", config.Start.Format("2006-01-02"), config.End.Format("2006-01-02"))

	return subject, out, nil
}

func getActionFromName(actionName string) (Analyser, error) {
	// Recreating map every time but it's fine. Pointers required for Configure.
	actionMap := map[string]Analyser{
		"top-artists": &TopArtistsAnalyzer{Config: AnalyserConfig{15}},
		"top-albums":  &TopAlbumsAnalyzer{Config: AnalyserConfig{15}},
		"top-songs":   &TopSongsAnalyzer{Config: AnalyserConfig{15}},
		"new-artists": &NewArtistsAnalyzer{Config: AnalyserConfig{0}},
		"gaps":        &GapsAnalyzer{},
	}

	action, ok := actionMap[actionName]
	if !ok {
		return nil, fmt.Errorf("Invalid analysis_name: %s", actionName)
	}

	return action, nil
}
