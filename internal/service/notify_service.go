package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"guitaracademy/internal/entities"
)

const inquiryHTML = `<div style="font-family: Arial, sans-serif; color: #222; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1560a8; border-bottom: 2px solid #1560a8; padding-bottom: 8px;">New {{.Academy}} Inquiry</h2>
  <div style="background: #f5faff; padding: 24px; border-radius: 12px; border: 2px solid #1560a8;">
    <p style="margin: 4px 0;"><strong style="color: #1560a8;">Name:</strong> {{.Name}}</p>
    <p style="margin: 4px 0;"><strong style="color: #1560a8;">Phone:</strong> {{.Phone}}</p>
    <p style="margin: 4px 0;"><strong style="color: #1560a8;">Email:</strong> {{.Email}}</p>
    <h3 style="color: #1560a8; margin: 18px 0 8px 0; font-size: 1.1em;">Message</h3>
    <div style="background: white; padding: 14px; border-radius: 6px; white-space: pre-line;">{{.Message}}</div>
  </div>
  <p style="margin-top: 28px; font-size: 14px; color: #888; text-align: center;">{{.Academy}} &mdash; Professional Guitar Lessons</p>
</div>`

const lessonBookingHTML = `<div style="font-family: Arial, sans-serif; color: #222; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1560a8; border-bottom: 2px solid #1560a8; padding-bottom: 8px;">New {{.Academy}} Lesson Booking</h2>
  <div style="background: #f5faff; padding: 24px; border-radius: 12px; border: 2px solid #1560a8;">
    <p style="margin: 4px 0;"><strong style="color: #1560a8;">Name:</strong> {{.Name}}</p>
    <p style="margin: 4px 0;"><strong style="color: #1560a8;">Phone:</strong> {{.Phone}}</p>
    <p style="margin: 4px 0;"><strong style="color: #1560a8;">Email:</strong> {{.Email}}</p>
    <h3 style="color: #1560a8; margin: 18px 0 8px 0; font-size: 1.1em;">Lesson Details</h3>
    <p style="margin: 4px 0;"><strong style="color: #1560a8;">Date:</strong> {{.LessonDate}}</p>
    <p style="margin: 4px 0;"><strong style="color: #1560a8;">Time:</strong> {{.LessonTime}}</p>
    <p style="margin: 4px 0;"><strong style="color: #1560a8;">Duration:</strong> {{.LessonDuration}}</p>
    <p style="margin: 4px 0;"><strong style="color: #1560a8;">Price:</strong> {{.LessonPrice}}</p>
    <h3 style="color: #1560a8; margin: 18px 0 8px 0; font-size: 1.1em;">Message</h3>
    <div style="background: white; padding: 14px; border-radius: 6px; white-space: pre-line;">{{.Message}}</div>
  </div>
  <p style="margin-top: 28px; font-size: 14px; color: #888; text-align: center;">{{.Academy}} &mdash; Professional Guitar Lessons</p>
</div>`

var (
	inquiryTmpl       = template.Must(template.New("inquiry").Parse(inquiryHTML))
	lessonBookingTmpl = template.Must(template.New("lesson_booking").Parse(lessonBookingHTML))
)

type contactEmailData struct {
	Academy        string
	Name           string
	Phone          string
	Email          string
	Message        string
	LessonDate     string
	LessonTime     string
	LessonDuration string
	LessonPrice    string
}

// NotifyService formats contact-form submissions and dispatches them by
// email to the academy's fixed recipient address. One email per call; no
// deduplication, rate limiting or retry.
type NotifyService struct {
	sender    EmailSender
	recipient string
	academy   string
	logger    *zap.Logger
}

func NewNotifyService(sender EmailSender, recipient, academy string, logger *zap.Logger) *NotifyService {
	if academy == "" {
		academy = "Guitar Academy"
	}
	return &NotifyService{
		sender:    sender,
		recipient: recipient,
		academy:   academy,
		logger:    logger,
	}
}

// SendContactNotification renders the lesson-booking template when all four
// lesson fields are present, otherwise the general-inquiry template, and
// sends the result.
func (s *NotifyService) SendContactNotification(ctx context.Context, n entities.ContactNotification) error {
	data := contactEmailData{
		Academy:        s.academy,
		Name:           n.Name,
		Phone:          n.Phone,
		Email:          n.Email,
		Message:        n.Message,
		LessonDate:     n.LessonDate,
		LessonTime:     n.LessonTime,
		LessonDuration: n.LessonDuration,
		LessonPrice:    n.LessonPrice,
	}

	var subject, plainBody string
	tmpl := inquiryTmpl
	if n.IsLessonInquiry() {
		tmpl = lessonBookingTmpl
		subject = fmt.Sprintf("🎸 New Lesson Booking from %s | %s", n.Name, s.academy)
		plainBody = fmt.Sprintf(
			"New lesson booking inquiry.\n\n"+
				"Name: %s\nPhone: %s\nEmail: %s\n\n"+
				"Lesson Details:\nDate: %s\nTime: %s\nDuration: %s\nPrice: %s\n\n"+
				"Message:\n%s\n",
			n.Name, n.Phone, n.Email,
			n.LessonDate, n.LessonTime, n.LessonDuration, n.LessonPrice,
			n.Message,
		)
	} else {
		subject = fmt.Sprintf("🎸 New Inquiry from %s | %s", n.Name, s.academy)
		plainBody = fmt.Sprintf(
			"New inquiry.\n\n"+
				"Name: %s\nPhone: %s\nEmail: %s\n\n"+
				"Message:\n%s\n",
			n.Name, n.Phone, n.Email, n.Message,
		)
	}

	var htmlBody bytes.Buffer
	if err := tmpl.Execute(&htmlBody, data); err != nil {
		s.logger.Error("contact email template failed", zap.Error(err), zap.String("from", n.Email))
		return fmt.Errorf("rendering contact email: %w", err)
	}

	msg := EmailMessage{
		To:      s.recipient,
		Subject: subject,
		Body:    plainBody,
		HTML:    htmlBody.String(),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("contact notification dispatch failed", zap.Error(err), zap.String("from", n.Email))
		return fmt.Errorf("sending contact notification: %w", err)
	}
	return nil
}
