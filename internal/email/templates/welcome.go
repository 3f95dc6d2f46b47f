package templates

// WelcomeUserData fills the welcome email sent to a newly registered user.
type WelcomeUserData struct {
	Name     string
	LoginURL string
}

const welcomeUserSubject = "Welcome to TransMaster!"

const welcomeUserBody = `<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Welcome to TransMaster</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f4f4f4; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td align="center">
                <table role="presentation" style="width: 100%; border-collapse: collapse; background: white; overflow: hidden;">
                    <tr>
                        <td style="background: linear-gradient(135deg, #11998e 0%, #38ef7d 100%); color: white; padding: 60px 50px; text-align: center;">
                            <h1 style="margin: 0; font-size: 30px;">Welcome to TransMaster</h1>
                            <p style="margin: 16px 0 0; font-size: 16px; opacity: 0.9;">
                                Hello {{name}}, let's start your learning journey
                            </p>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 50px; color: #333333; font-size: 16px; line-height: 1.7;">
                            <p><strong>Dear {{name}},</strong></p>
                            <p>
                                Your account has been created and everything is ready for you.
                                Sign in to explore your dashboard, track your progress, and pick up
                                right where you left off on any device.
                            </p>
                            <p style="text-align: center; margin: 36px 0;">
                                <a href="{{loginUrl}}" style="background: #11998e; color: white; padding: 16px 40px; border-radius: 6px; text-decoration: none; display: inline-block; font-size: 16px;">Log in to your account</a>
                            </p>
                            <p>
                                If the button doesn't work, copy this link into your browser:<br />
                                <a href="{{loginUrl}}" style="color: #11998e; word-break: break-all;">{{loginUrl}}</a>
                            </p>
                            <p style="margin-bottom: 0;">Happy learning!</p>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 24px 50px; background: #fafafa; color: #999999; font-size: 13px; text-align: center;">
                            You received this email because an account was registered with this address.
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>`

// WelcomeUserSubject returns the fixed subject line for the welcome email.
func WelcomeUserSubject() string {
	return welcomeUserSubject
}

// RenderWelcomeUser fills the welcome template.
func RenderWelcomeUser(data WelcomeUserData) string {
	return replaceTokens(welcomeUserBody, map[string]string{
		"name":     data.Name,
		"loginUrl": data.LoginURL,
	})
}
