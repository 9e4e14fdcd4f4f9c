package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/staffpoint/hr-backend-go/internal/domain/attendance"
	"github.com/staffpoint/hr-backend-go/internal/domain/employee"
	"github.com/staffpoint/hr-backend-go/internal/domain/leave"
	"github.com/staffpoint/hr-backend-go/internal/domain/member"
	"github.com/staffpoint/hr-backend-go/internal/pkg/validator"
)

const (
	handlerTimeout   = 15 * time.Second
	sessionMaxIdle   = 24 * time.Hour
	sessionPruneTick = time.Hour
)

// Bot is the Telegram front-end for employee self-service. It talks
// to the same domain services as the HTTP API and keeps all
// conversation state in an explicit session store.
type Bot struct {
	api      *tgbotapi.BotAPI
	sessions *SessionStore
	logger   *slog.Logger

	employeeService   employee.Service
	attendanceService attendance.Service
	leaveService      leave.Service
	memberService     member.Service
}

func New(
	token string,
	logger *slog.Logger,
	employeeService employee.Service,
	attendanceService attendance.Service,
	leaveService leave.Service,
	memberService member.Service,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}

	return &Bot{
		api:               api,
		sessions:          NewSessionStore(),
		logger:            logger,
		employeeService:   employeeService,
		attendanceService: attendanceService,
		leaveService:      leaveService,
		memberService:     memberService,
	}, nil
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context, pollTimeout int) error {
	b.logger.Info("bot online", "username", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := b.api.GetUpdatesChan(u)

	prune := time.NewTicker(sessionPruneTick)
	defer prune.Stop()

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case <-prune.C:
			if n := b.sessions.PruneIdle(sessionMaxIdle); n > 0 {
				b.logger.Info("pruned idle sessions", "count", n)
			}
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(ctx, handlerTimeout)
	defer cancel()

	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	var reply string
	if msg.IsCommand() {
		reply = b.handleCommand(ctx, chatID, msg.Command())
	} else {
		reply = b.handleText(ctx, chatID, text)
	}

	if reply == "" {
		return
	}
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, reply)); err != nil {
		b.logger.Error("failed to send reply", "chat_id", chatID, "error", err)
	}
}

func (b *Bot) handleCommand(ctx context.Context, chatID int64, command string) string {
	session := b.sessions.Get(chatID)

	switch command {
	case "start", "help":
		b.sessions.Update(chatID, func(s *Session) { s.ResetFlow() })
		if session.Verified() {
			return "Commands:\n/checkin - clock in\n/checkout - clock out\n/status - today's attendance\n/leave - request leave\n/unlink - forget this chat"
		}
		return "Welcome. Use /verify to link your phone number, or /register if you are new here."

	case "cancel":
		b.sessions.Update(chatID, func(s *Session) { s.ResetFlow() })
		return "Cancelled."

	case "verify":
		b.sessions.Update(chatID, func(s *Session) {
			s.ResetFlow()
			s.State = StateAwaitingPhone
		})
		return "Send me the phone number on your employee record."

	case "register":
		b.sessions.Update(chatID, func(s *Session) {
			s.ResetFlow()
			s.State = StateAwaitingName
		})
		return "Let's get you registered. What is your full name?"

	case "unlink":
		b.sessions.Delete(chatID)
		return "This chat has been unlinked."

	case "checkin":
		return b.requireVerified(session, func() string { return b.clockIn(ctx, session) })

	case "checkout":
		return b.requireVerified(session, func() string { return b.clockOut(ctx, session) })

	case "status":
		return b.requireVerified(session, func() string { return b.todayStatus(ctx, session) })

	case "leave":
		return b.requireVerified(session, func() string {
			b.sessions.Update(chatID, func(s *Session) {
				s.ResetFlow()
				s.State = StateAwaitingLeaveType
			})
			return "What kind of leave? (planned, happy, medical)"
		})
	}

	return "Unknown command. Try /help."
}

func (b *Bot) requireVerified(session *Session, fn func() string) string {
	if !session.Verified() {
		return "This chat is not linked yet. Use /verify first."
	}
	return fn()
}

func (b *Bot) handleText(ctx context.Context, chatID int64, text string) string {
	session := b.sessions.Get(chatID)

	switch session.State {
	case StateAwaitingPhone:
		return b.verifyPhone(ctx, chatID, text)
	case StateAwaitingName:
		if text == "" {
			return "I need a name. Try again, or /cancel."
		}
		b.sessions.Update(chatID, func(s *Session) {
			s.Name = text
			s.State = StateAwaitingRegPhone
		})
		return "Thanks. Now send your phone number."
	case StateAwaitingRegPhone:
		return b.registerMember(ctx, chatID, session.Name, text)
	case StateAwaitingLeaveType:
		if !leave.Type(strings.ToLower(text)).Valid() {
			return "Pick one of: planned, happy, medical. Or /cancel."
		}
		b.sessions.Update(chatID, func(s *Session) {
			s.LeaveType = strings.ToLower(text)
			s.State = StateAwaitingLeaveStart
		})
		return "First day of leave? (YYYY-MM-DD)"
	case StateAwaitingLeaveStart:
		if _, ok := validator.IsValidDate(text); !ok {
			return "That doesn't look like a date. Use YYYY-MM-DD, or /cancel."
		}
		b.sessions.Update(chatID, func(s *Session) {
			s.LeaveStart = text
			s.State = StateAwaitingLeaveEnd
		})
		return "Last day of leave? (YYYY-MM-DD, same day for a single-day leave)"
	case StateAwaitingLeaveEnd:
		if _, ok := validator.IsValidDate(text); !ok {
			return "That doesn't look like a date. Use YYYY-MM-DD, or /cancel."
		}
		b.sessions.Update(chatID, func(s *Session) {
			s.LeaveEnd = text
			s.State = StateAwaitingLeaveNote
		})
		return "Any reason to pass along? (or send - to skip)"
	case StateAwaitingLeaveNote:
		return b.submitLeave(ctx, chatID, session, text)
	}

	return "I wasn't expecting that. Try /help."
}

func (b *Bot) verifyPhone(ctx context.Context, chatID int64, phone string) string {
	emp, err := b.employeeService.VerifyByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return "No employee record matches that number. Check it, or use /register if you are new."
		}
		b.logger.Error("phone verification failed", "chat_id", chatID, "error", err)
		return "Something went wrong, please try again later."
	}

	b.sessions.Update(chatID, func(s *Session) {
		s.ResetFlow()
		s.EmployeeID = emp.ID
	})
	return fmt.Sprintf("Linked. Hello, %s! Use /checkin, /checkout, /status or /leave.", emp.FullName)
}

func (b *Bot) registerMember(ctx context.Context, chatID int64, name, phone string) string {
	req := &member.RegisterMemberRequest{
		FullName: name,
		Phone:    phone,
		ChatID:   &chatID,
	}

	_, err := b.memberService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrPhoneAlreadyEmployed):
			b.sessions.Update(chatID, func(s *Session) { s.ResetFlow() })
			return "That number already belongs to an employee. Use /verify instead."
		case errors.Is(err, member.ErrPhoneAlreadyQueued):
			b.sessions.Update(chatID, func(s *Session) { s.ResetFlow() })
			return "That number is already awaiting approval. Hang tight."
		}
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return "That phone number doesn't look valid. Try again, or /cancel."
		}
		b.logger.Error("member registration failed", "chat_id", chatID, "error", err)
		return "Something went wrong, please try again later."
	}

	b.sessions.Update(chatID, func(s *Session) { s.ResetFlow() })
	return "You're in the queue. An admin will review your registration."
}

func (b *Bot) clockIn(ctx context.Context, session *Session) string {
	att, err := b.attendanceService.ClockIn(ctx, &attendance.ClockInRequest{EmployeeID: session.EmployeeID})
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrAlreadyClockedIn):
			return "You already clocked in today."
		case errors.Is(err, attendance.ErrHolidayToday):
			return "Today is a company holiday, no clock-in needed."
		case errors.Is(err, attendance.ErrOnLeaveToday):
			return "You are on approved leave today."
		}
		b.logger.Error("clock-in failed", "employee_id", session.EmployeeID, "error", err)
		return "Something went wrong, please try again later."
	}

	if att.Status == string(attendance.StatusLate) {
		return "Clocked in. You're marked late today."
	}
	return "Clocked in. Have a good shift!"
}

func (b *Bot) clockOut(ctx context.Context, session *Session) string {
	att, err := b.attendanceService.ClockOut(ctx, &attendance.ClockOutRequest{EmployeeID: session.EmployeeID})
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrNotClockedIn):
			return "You haven't clocked in today."
		case errors.Is(err, attendance.ErrAlreadyClockedOut):
			return "You already clocked out today."
		case errors.Is(err, attendance.ErrHolidayToday):
			return "Today is a company holiday."
		}
		b.logger.Error("clock-out failed", "employee_id", session.EmployeeID, "error", err)
		return "Something went wrong, please try again later."
	}

	reply := "Clocked out."
	if att.TotalHours != nil {
		reply = fmt.Sprintf("Clocked out. You worked %s hours today.", att.TotalHours.StringFixed(2))
	}
	if att.EstimatedPay != nil {
		reply += fmt.Sprintf(" Estimated pay: %s.", att.EstimatedPay.StringFixed(2))
	}
	return reply
}

func (b *Bot) todayStatus(ctx context.Context, session *Session) string {
	att, err := b.attendanceService.TodayForEmployee(ctx, session.EmployeeID)
	if err != nil {
		b.logger.Error("status lookup failed", "employee_id", session.EmployeeID, "error", err)
		return "Something went wrong, please try again later."
	}
	if att == nil {
		return "No attendance recorded today."
	}

	reply := fmt.Sprintf("Today: %s.", att.Status)
	if att.SignIn != nil {
		reply += fmt.Sprintf(" In at %s.", *att.SignIn)
	}
	if att.SignOut != nil {
		reply += fmt.Sprintf(" Out at %s.", *att.SignOut)
	}
	return reply
}

func (b *Bot) submitLeave(ctx context.Context, chatID int64, session *Session, note string) string {
	req := &leave.CreateLeaveRequest{
		EmployeeID: session.EmployeeID,
		LeaveType:  session.LeaveType,
		StartDate:  session.LeaveStart,
		EndDate:    session.LeaveEnd,
	}
	if note != "" && note != "-" {
		req.Reason = &note
	}

	result, err := b.leaveService.Create(ctx, req)
	if err != nil {
		b.sessions.Update(chatID, func(s *Session) { s.ResetFlow() })
		switch {
		case errors.Is(err, leave.ErrInvalidPeriod):
			return "The last day was before the first day. Start over with /leave."
		case errors.Is(err, leave.ErrOverlappingRequest):
			return "You already have a leave request covering those days."
		case errors.Is(err, leave.ErrInsufficientBalance):
			return "Not enough leave balance for that period."
		}
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return "That request didn't validate. Start over with /leave."
		}
		b.logger.Error("leave submission failed", "employee_id", session.EmployeeID, "error", err)
		return "Something went wrong, please try again later."
	}

	b.sessions.Update(chatID, func(s *Session) { s.ResetFlow() })
	return fmt.Sprintf("Leave request submitted: %s, %s to %s (%d days). An admin will review it.",
		result.LeaveType, result.StartDate, result.EndDate, result.TotalDays)
}
