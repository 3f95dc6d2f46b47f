package templates

// PortfolioResponseData fills the acknowledgment sent to a visitor who
// contacted the portfolio owner.
type PortfolioResponseData struct {
	Name    string
	MyPhone string
	MyEmail string
}

const portfolioResponseSubject = "Let's Connect!"

const portfolioResponseBody = `<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Thank You for Your Interest</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f4f4f4; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td align="center">
                <table role="presentation" style="width: 100%; border-collapse: collapse; background: white; overflow: hidden;">
                    <tr>
                        <td style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 60px 50px; text-align: center;">
                            <h1 style="margin: 0; font-size: 30px; letter-spacing: 1px;">Thank You for Reaching Out</h1>
                            <p style="margin: 16px 0 0; font-size: 16px; opacity: 0.9;">I appreciate your interest in working together</p>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 50px; color: #333333; font-size: 16px; line-height: 1.7;">
                            <p><strong>Hi {{name}},</strong></p>
                            <p>
                                Thank you for getting in touch about your project. I've received your message
                                and will get back to you with a detailed response as soon as possible.
                            </p>
                            <p>
                                In the meantime, feel free to reach me directly through either of the
                                channels below if your matter is urgent.
                            </p>
                            <table role="presentation" style="width: 100%; border-collapse: collapse; margin: 30px 0; background: #f8f9ff; border-radius: 8px;">
                                <tr>
                                    <td style="padding: 24px 30px;">
                                        <p style="margin: 0 0 8px;">
                                            <strong>Phone:</strong>
                                            <a href="tel:{{myPhone}}" style="color: #667eea; text-decoration: none;">{{myPhone}}</a>
                                        </p>
                                        <p style="margin: 0;">
                                            <strong>Email:</strong>
                                            <a href="mailto:{{myMail}}?subject=Project Discussion" style="color: #667eea; text-decoration: none;">{{myMail}}</a>
                                        </p>
                                    </td>
                                </tr>
                            </table>
                            <p>Looking forward to connecting with you!</p>
                            <p style="margin-bottom: 0;">Best regards</p>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 24px 50px; background: #fafafa; color: #999999; font-size: 13px; text-align: center;">
                            This is an automated acknowledgment of your inquiry.
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>`

// PortfolioResponseSubject returns the fixed subject line for the
// portfolio acknowledgment email.
func PortfolioResponseSubject() string {
	return portfolioResponseSubject
}

// RenderPortfolioResponse fills the portfolio acknowledgment template.
func RenderPortfolioResponse(data PortfolioResponseData) string {
	return replaceTokens(portfolioResponseBody, map[string]string{
		"name":    data.Name,
		"myPhone": data.MyPhone,
		"myMail":  data.MyEmail,
	})
}
