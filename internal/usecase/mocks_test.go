package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"healthconnect/internal/domain/entity"
	"healthconnect/internal/domain/repository"
	"healthconnect/internal/service"
)

// Compile-time checks
var (
	_ repository.UserRepository         = (*MockUserRepository)(nil)
	_ repository.AppointmentRepository  = (*MockAppointmentRepository)(nil)
	_ repository.ConsultationRepository = (*MockConsultationRepository)(nil)
	_ service.SessionService            = (*MockSessionService)(nil)
	_ service.EmailSender               = (*stubEmailSender)(nil)
	_ service.SMSSender                 = (*stubSMSSender)(nil)
)

// MockUserRepository is a function-field mock of repository.UserRepository.
type MockUserRepository struct {
	CreateFunc                func(ctx context.Context, user *entity.User) error
	FindByUsernameFunc        func(ctx context.Context, username string) (*entity.User, error)
	FindByUsernameOrEmailFunc func(ctx context.Context, username, email string) (*entity.User, error)

	CreateCallCount int32
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	if m.FindByUsernameOrEmailFunc != nil {
		return m.FindByUsernameOrEmailFunc(ctx, username, email)
	}
	return nil, nil
}

// MockAppointmentRepository is a function-field mock of repository.AppointmentRepository.
type MockAppointmentRepository struct {
	CreateFunc func(ctx context.Context, appointment *entity.Appointment) error

	CreateCallCount int32
	Created         []*entity.Appointment
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	m.Created = append(m.Created, appointment)
	return nil
}

// MockConsultationRepository is a function-field mock of repository.ConsultationRepository.
type MockConsultationRepository struct {
	CreateFunc func(ctx context.Context, consultation *entity.Consultation) error

	CreateCallCount int32
	Created         []*entity.Consultation
}

func (m *MockConsultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, consultation)
	}
	m.Created = append(m.Created, consultation)
	return nil
}

// MockSessionService keeps sessions in a map.
type MockSessionService struct {
	CreateFunc  func(ctx context.Context, session *entity.Session) (string, error)
	DestroyFunc func(ctx context.Context, sessionID string) error

	Sessions map[string]*entity.Session
	nextID   int32
}

func (m *MockSessionService) Create(ctx context.Context, session *entity.Session) (string, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	if m.Sessions == nil {
		m.Sessions = make(map[string]*entity.Session)
	}
	id := string(rune('a' + atomic.AddInt32(&m.nextID, 1)))
	m.Sessions[id] = session
	return id, nil
}

func (m *MockSessionService) Get(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, ok := m.Sessions[sessionID]
	if !ok {
		return nil, service.ErrSessionNotFound
	}
	return session, nil
}

func (m *MockSessionService) Destroy(ctx context.Context, sessionID string) error {
	if m.DestroyFunc != nil {
		return m.DestroyFunc(ctx, sessionID)
	}
	if _, ok := m.Sessions[sessionID]; !ok {
		return errors.New("no such session")
	}
	delete(m.Sessions, sessionID)
	return nil
}

func (m *MockSessionService) TTL() time.Duration {
	return time.Hour
}

// stubEmailSender / stubSMSSender let workflow tests simulate transports.
type stubEmailSender struct {
	err       error
	callCount int32
}

func (s *stubEmailSender) Send(ctx context.Context, to, subject, body string) error {
	atomic.AddInt32(&s.callCount, 1)
	return s.err
}

func (s *stubEmailSender) Enabled() bool { return s.err == nil }

type stubSMSSender struct {
	err       error
	callCount int32
}

func (s *stubSMSSender) Send(ctx context.Context, to, body string) error {
	atomic.AddInt32(&s.callCount, 1)
	return s.err
}

func (s *stubSMSSender) Enabled() bool { return s.err == nil }
