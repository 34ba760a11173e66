package constant

const (
	NoteEmailFooter = "This note was sent from Vibe App"

	NoteEmailHTMLTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">{{.Title}}</h2>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <p style="white-space: pre-wrap; color: #555;">{{.Body}}</p>
  </div>
  <hr style="border: none; border-top: 1px solid #ddd; margin: 30px 0;" />
  <p style="color: #999; font-size: 12px;">{{.Footer}}</p>
</div>`

	NoteEmailTextTemplate = "{{.Title}}\n\n{{.Body}}"
)

// Result messages of the note mail sender.
const (
	MailNoRecipients          = "no recipients"
	MailPrimaryRequired       = "at least one primary recipient required"
	MailProviderUnreachable   = "failed to reach email provider"
	TestEmailDefaultTitle     = "Test Email"
	TestEmailDefaultBody      = "This is a test email from your Vibe App!"
	TestEmailMissingRecipient = `Missing "to" email address`
)
