package templates

const welcomeGenericBody = `<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Welcome</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f4f4f4; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;">
    <table role="presentation" style="width: 100%; border-collapse: collapse; background: white;">
        <tr>
            <td style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 40px; text-align: center;">
                <h1 style="margin: 0; font-size: 28px;">Welcome aboard!</h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 40px; color: #333333; font-size: 16px; line-height: 1.6;">
                <p><strong>Hi {{name}},</strong></p>
                <p>Your account is ready. We're glad to have you with us.</p>
                {{#if activationUrl}}
                <p style="text-align: center; margin: 30px 0;">
                    <a href="{{activationUrl}}" style="background: #667eea; color: white; padding: 14px 32px; border-radius: 6px; text-decoration: none; display: inline-block;">Activate your account</a>
                </p>
                {{/if}}
                <p>If you have any questions, just reply to this email.</p>
            </td>
        </tr>
        <tr>
            <td style="padding: 20px 40px; background: #fafafa; color: #999999; font-size: 13px; text-align: center;">
                You received this email because an account was created with this address.
            </td>
        </tr>
    </table>
</body>
</html>`

const resetPasswordBody = `<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Reset Your Password</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f4f4f4; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;">
    <table role="presentation" style="width: 100%; border-collapse: collapse; background: white;">
        <tr>
            <td style="background: #333a56; color: white; padding: 40px; text-align: center;">
                <h1 style="margin: 0; font-size: 26px;">Password reset requested</h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 40px; color: #333333; font-size: 16px; line-height: 1.6;">
                <p><strong>Hi {{name}},</strong></p>
                <p>We received a request to reset the password for your account.</p>
                <p style="text-align: center; margin: 30px 0;">
                    <a href="{{resetUrl}}" style="background: #333a56; color: white; padding: 14px 32px; border-radius: 6px; text-decoration: none; display: inline-block;">Reset password</a>
                </p>
                {{#if expiresIn}}
                <p style="color: #777777; font-size: 14px;">This link expires in {{expiresIn}}.</p>
                {{/if}}
                <p>If you didn't request this, you can safely ignore this email.</p>
            </td>
        </tr>
    </table>
</body>
</html>`

const notificationBody = `<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Notification</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f4f4f4; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;">
    <table role="presentation" style="width: 100%; border-collapse: collapse; background: white;">
        <tr>
            <td style="background: #2d8a6a; color: white; padding: 32px 40px;">
                <h1 style="margin: 0; font-size: 24px;">{{title}}</h1>
            </td>
        </tr>
        <tr>
            <td style="padding: 40px; color: #333333; font-size: 16px; line-height: 1.6;">
                <p>{{message}}</p>
                {{#if actionUrl}}
                <p style="margin: 30px 0;">
                    <a href="{{actionUrl}}" style="background: #2d8a6a; color: white; padding: 12px 28px; border-radius: 6px; text-decoration: none; display: inline-block;">View details</a>
                </p>
                {{/if}}
            </td>
        </tr>
    </table>
</body>
</html>`
