// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-site/internal/contact"
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Compose a contact message as a mailto link",
	Long: `Contact builds the mailto link the page's contact form opens: addressed
to the profile email, subject "Website contact", with the sender's name
and email above the message. Fields not given as flags are asked for
interactively unless --no-input is set. Nothing is sent.`,
	RunE: runContact,
}

func init() {
	contactCmd.Flags().String("name", "", "sender name")
	contactCmd.Flags().String("email", "", "sender email")
	contactCmd.Flags().String("message", "", "message body")
	contactCmd.Flags().Bool("no-input", false, "do not prompt for missing fields")

	rootCmd.AddCommand(contactCmd)
}

func runContact(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	var msg contact.Message
	msg.Name, _ = cmd.Flags().GetString("name")
	msg.Email, _ = cmd.Flags().GetString("email")
	msg.Body, _ = cmd.Flags().GetString("message")

	noInput, _ := cmd.Flags().GetBool("no-input")
	if !noInput && (msg.Name == "" || msg.Email == "" || msg.Body == "") {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Your name").Value(&msg.Name),
				huh.NewInput().Title("Your email").Value(&msg.Email),
				huh.NewText().Title("Message").Value(&msg.Body),
			).Title(fmt.Sprintf("Message to %s", p.Name)),
		)
		if err := form.Run(); err != nil {
			return fmt.Errorf("contact form: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), contact.MailtoURL(p.Email, msg))
	return nil
}
