package registration

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"metagym/internal/gym"
	"metagym/internal/logger"
	"metagym/internal/metrics"
	"metagym/internal/user"
)

var (
	ErrRegistrationInProgress = errors.New("a registration is already in progress")
	ErrNotAcknowledged        = errors.New("membership terms must be acknowledged")
	ErrInvalidData            = errors.New("registration data is invalid")
)

// SagaState tracks a single registration run. A failed run is terminal; the
// caller starts over with a fresh saga.
type SagaState string

const (
	StateIdle      SagaState = "idle"
	StatePending   SagaState = "pending"
	StateSucceeded SagaState = "succeeded"
	StateFailed    SagaState = "failed"
)

// GymCreator is the slice of the gym repository the saga needs.
type GymCreator interface {
	Create(ctx context.Context, params gym.CreateGymParams) (*gym.Gym, error)
	Delete(ctx context.Context, id int) error
}

// AdminCreator is the slice of the user service the saga needs.
type AdminCreator interface {
	CreateAdmin(ctx context.Context, params user.CreateAdminParams) (*user.User, error)
}

// AuditRecorder records the completed registration. Best-effort only.
type AuditRecorder interface {
	RecordRegistration(ctx context.Context, gymName, email string, tenantID int) error
}

// WelcomeMailer delivers the administrator's temporary credentials.
type WelcomeMailer interface {
	SendWelcomeEmail(ctx context.Context, to, gymName, tempPassword, loginURL string) error
}

type Service interface {
	Register(ctx context.Context, data GymRegistrationData) RegistrationOutcome
}

type service struct {
	gyms     GymCreator
	users    AdminCreator
	audit    AuditRecorder
	mailer   WelcomeMailer
	tenantID int
	loginURL string
}

func NewService(gyms GymCreator, users AdminCreator, audit AuditRecorder, mailer WelcomeMailer, tenantID int, loginURL string) Service {
	return &service{
		gyms:     gyms,
		users:    users,
		audit:    audit,
		mailer:   mailer,
		tenantID: tenantID,
		loginURL: loginURL,
	}
}

func (s *service) Register(ctx context.Context, data GymRegistrationData) RegistrationOutcome {
	saga := newSaga(s)
	if !saga.TryBegin() {
		return RegistrationOutcome{Success: false, Error: ErrRegistrationInProgress.Error()}
	}
	return saga.run(ctx, data)
}

// saga executes one registration attempt. TryBegin admits exactly one run;
// after that the saga is spent.
type saga struct {
	svc *service

	mu    sync.Mutex
	state SagaState
}

func newSaga(svc *service) *saga {
	return &saga{svc: svc, state: StateIdle}
}

// TryBegin moves the saga from Idle to Pending. It returns false if the saga
// already left Idle.
func (sg *saga) TryBegin() bool {
	sg.mu.Lock()
	defer sg.mu.Unlock()
	if sg.state != StateIdle {
		return false
	}
	sg.state = StatePending
	return true
}

func (sg *saga) State() SagaState {
	sg.mu.Lock()
	defer sg.mu.Unlock()
	return sg.state
}

func (sg *saga) finish(state SagaState) {
	sg.mu.Lock()
	sg.state = state
	sg.mu.Unlock()
}

func (sg *saga) run(ctx context.Context, data GymRegistrationData) RegistrationOutcome {
	if !data.Membership.Acknowledged {
		return sg.fail(ErrNotAcknowledged.Error())
	}
	if fieldErrors := data.Validate(); fieldErrors != nil {
		return sg.fail(ErrInvalidData.Error())
	}

	createdGym, err := sg.svc.gyms.Create(ctx, gym.CreateGymParams{
		TenantID: sg.svc.tenantID,
		Name:     data.Gym.Name,
		Slug:     data.Gym.Code,
		Address:  data.Gym.Address,
		Email:    data.Gym.Email,
		Theme:    gym.Theme(data.Gym.Theme),
		LogoURL:  data.Gym.LogoURL,
		Schedule: toGymSchedule(data.Gym.Schedule),
	})
	if err != nil {
		logger.Error("Gym creation failed", "gym_name", data.Gym.Name, "error", err)
		return sg.fail(err.Error())
	}

	password, err := GeneratePassword(MinPasswordLength)
	if err != nil {
		logger.Error("Password generation failed", "gym_id", createdGym.ID, "error", err)
		return sg.compensateAndFail(ctx, createdGym.ID, fmt.Errorf("user creation failed: %w", err))
	}

	admin, err := sg.svc.users.CreateAdmin(ctx, user.CreateAdminParams{
		Email:    data.Gym.Email,
		Password: password,
		GymName:  createdGym.Name,
		GymID:    createdGym.ID,
		TenantID: sg.svc.tenantID,
	})
	if err != nil {
		logger.Error("Admin user creation failed", "gym_id", createdGym.ID, "error", err)
		return sg.compensateAndFail(ctx, createdGym.ID, fmt.Errorf("user creation failed: %w", err))
	}

	// The registration is committed. Everything after this point is
	// best-effort and must not undo it.
	sg.runPostCommit(ctx, []postCommitTask{
		{
			name: "audit",
			run: func(ctx context.Context) error {
				return sg.svc.audit.RecordRegistration(ctx, createdGym.Name, admin.Email, sg.svc.tenantID)
			},
		},
		{
			name: "welcome_email",
			run: func(ctx context.Context) error {
				return sg.svc.mailer.SendWelcomeEmail(ctx, admin.Email, createdGym.Name, password, sg.svc.loginURL)
			},
		},
	})

	sg.finish(StateSucceeded)
	metrics.RecordRegistration("succeeded")
	logger.Info("Gym registered", "gym_id", createdGym.ID, "gym_name", createdGym.Name, "admin_id", admin.ID)
	return RegistrationOutcome{
		Success: true,
		GymID:   createdGym.ID,
		GymName: createdGym.Name,
		Slug:    createdGym.Slug,
	}
}

func (sg *saga) fail(message string) RegistrationOutcome {
	sg.finish(StateFailed)
	metrics.RecordRegistration("failed")
	return RegistrationOutcome{Success: false, Error: message}
}

// compensateAndFail deletes the gym created earlier in the run and reports
// the original failure. A failed delete is logged for manual cleanup and
// never masks the original error.
func (sg *saga) compensateAndFail(ctx context.Context, gymID int, cause error) RegistrationOutcome {
	if delErr := sg.svc.gyms.Delete(ctx, gymID); delErr != nil {
		logger.Error("Compensating gym delete failed, manual cleanup required",
			"gym_id", gymID, "error", delErr)
		metrics.RecordCompensation("failed")
	} else {
		logger.Info("Compensating gym delete succeeded", "gym_id", gymID)
		metrics.RecordCompensation("succeeded")
	}
	return sg.fail(cause.Error())
}

type postCommitTask struct {
	name string
	run  func(ctx context.Context) error
}

func (sg *saga) runPostCommit(ctx context.Context, tasks []postCommitTask) {
	for _, task := range tasks {
		if err := task.run(ctx); err != nil {
			logger.Error("Post-commit task failed", "task", task.name, "error", err)
			metrics.RecordPostCommitFailure(task.name)
		}
	}
}

func toGymSchedule(schedule []DaySchedule) gym.Schedule {
	out := make(gym.Schedule, 0, len(schedule))
	for _, day := range schedule {
		ranges := make([]gym.TimeRange, 0, len(day.TimeRanges))
		for _, tr := range day.TimeRanges {
			ranges = append(ranges, gym.TimeRange{Start: tr.Start, End: tr.End})
		}
		out = append(out, gym.DaySchedule{
			Day:        gym.DayOfWeek(day.Day),
			IsOpen:     day.IsOpen,
			TimeRanges: ranges,
		})
	}
	return out
}
