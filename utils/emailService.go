package utils

import (
	"disha/config"
	"fmt"
	"log"
	"time"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendEmail delivers one HTML email through SendGrid
func sendEmail(toName, toEmail, subject, htmlBody string) error {
	if config.AppConfig.SendgridKey == "" {
		log.Printf("SENDGRID_API_KEY not set, skipping email to %s (%s)", toEmail, subject)
		return nil
	}

	from := sgmail.NewEmail(config.AppConfig.AppName, config.AppConfig.EmailSender)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid error: %d", resp.StatusCode)
	}

	log.Println("Email sent successfully to", toEmail)
	return nil
}

// SendOTPEmail sends the verification OTP to a user
func SendOTPEmail(otp, email string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Disha Learning OTP Verification</h2>
					<p style="font-size: 16px; color: #555555; text-align: center;">Your One Time Password (OTP) is:</p>
					<h1 style="text-align: center; color: #4CAF50; font-size: 40px; margin: 20px 0;">%s</h1>
					<p style="font-size: 14px; color: #999999; text-align: center;">Do not share this OTP with anyone. It is valid for 10 minutes.</p>
				</div>
			</body>
		</html>
	`, otp)

	return sendEmail("", email, "OTP Verification Code for Disha Learning", body)
}

// SendEnrollmentEmail sends an email notification when user enrolls in a course
func SendEnrollmentEmail(email, userName, courseName string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">🎉 Enrollment Successful!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Congratulations! You have successfully enrolled in:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">You can now access all the topics and start learning. Complete every topic and pass the final exam to earn your certificate.</p>
					<p style="font-size: 14px; color: #999999; text-align: center; margin-top: 30px;">Happy Learning!</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">Disha Learning Team</p>
				</div>
			</body>
		</html>
	`, userName, courseName)

	return sendEmail(userName, email, "Course Enrollment Confirmation - Disha Learning", body)
}

// SendCertificateEmail sends certificate issue notification email
func SendCertificateEmail(email, userName, courseName, certificateNumber, level string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">🏆 %s Certificate Earned</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Congratulations on passing the final exam for:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center;">
						<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Your Certificate Number:</p>
						<h2 style="color: #2196F3; margin: 0;">%s</h2>
					</div>
					<p style="font-size: 14px; color: #666666;">You can share this certificate number with partner companies for verification, and you are now eligible to apply for jobs on the platform.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">Disha Learning Team</p>
				</div>
			</body>
		</html>
	`, level, userName, courseName, certificateNumber)

	return sendEmail(userName, email, "Course Completion Certificate - Disha Learning", body)
}

// SendCoursePublishedEmail notifies a waitlisted user that a course went live
func SendCoursePublishedEmail(email, userName, courseName string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">📚 A Course You Wanted Is Live!</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Good news! The course you joined the waitlist for is now published:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">Log in and enroll now to secure your spot.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">Disha Learning Team</p>
				</div>
			</body>
		</html>
	`, userName, courseName)

	return sendEmail(userName, email, courseName+" is now live - Disha Learning", body)
}

// SendApplicationStatusEmail notifies an applicant about a review decision
func SendApplicationStatusEmail(email, userName, jobTitle, companyName, status string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Application Update</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your application for <b>%s</b> at <b>%s</b> has been updated:</p>
					<h3 style="text-align: center; color: #2196F3; margin: 20px 0;">%s</h3>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">Disha Learning Team</p>
				</div>
			</body>
		</html>
	`, userName, jobTitle, companyName, status)

	return sendEmail(userName, email, "Job Application Update - Disha Learning", body)
}

// SendExamReminderEmail reminds a user of an exam scheduled for today
func SendExamReminderEmail(email, userName, courseName string, scheduledAt time.Time) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">⏰ Exam Reminder</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your final exam for <b>%s</b> is scheduled at:</p>
					<h3 style="text-align: center; color: #FF9800; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">Make sure you are in a quiet place with a stable connection before starting.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">Disha Learning Team</p>
				</div>
			</body>
		</html>
	`, userName, courseName, scheduledAt.Format("02 Jan 2006 15:04 MST"))

	return sendEmail(userName, email, "Final Exam Reminder - Disha Learning", body)
}
