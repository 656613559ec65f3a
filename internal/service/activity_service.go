package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mergington/activity-registry/internal/domain"
	"github.com/mergington/activity-registry/internal/dto"
	"github.com/mergington/activity-registry/internal/repository"
	"github.com/mergington/activity-registry/pkg/logger"
	"github.com/mergington/activity-registry/pkg/telemetry"
)

var (
	ErrActivityNotFound = repository.ErrActivityNotFound
	ErrAlreadySignedUp  = repository.ErrAlreadyRegistered
	ErrNotRegistered    = repository.ErrNotRegistered
)

// ActivityService defines the interface for activity registry operations
type ActivityService interface {
	// List retrieves the full catalog keyed by activity name
	List(ctx context.Context) (map[string]*dto.ActivityResponse, error)
	// Signup registers email for the named activity
	Signup(ctx context.Context, activityName, email string) (*dto.MessageResponse, error)
	// Unregister removes email from the named activity
	Unregister(ctx context.Context, activityName, email string) (*dto.MessageResponse, error)
}

// activityService implements ActivityService
type activityService struct {
	activityRepo    repository.ActivityRepository
	signups         *telemetry.Counter
	unregistrations *telemetry.Counter
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo repository.ActivityRepository) ActivityService {
	signups, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "activity_signups_total",
		Description: "Total number of successful activity signups",
		Unit:        "1",
	})
	if err != nil {
		logger.Warn("failed to register signup counter", zap.Error(err))
	}

	unregistrations, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "activity_unregistrations_total",
		Description: "Total number of successful activity unregistrations",
		Unit:        "1",
	})
	if err != nil {
		logger.Warn("failed to register unregistration counter", zap.Error(err))
	}

	return &activityService{
		activityRepo:    activityRepo,
		signups:         signups,
		unregistrations: unregistrations,
	}
}

// List retrieves the full catalog keyed by activity name
func (s *activityService) List(ctx context.Context) (map[string]*dto.ActivityResponse, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make(map[string]*dto.ActivityResponse, len(activities))
	for name, activity := range activities {
		responses[name] = toActivityResponse(activity)
	}
	return responses, nil
}

// Signup registers email for the named activity. The email is treated as
// an opaque identifier; its shape is not validated.
func (s *activityService) Signup(ctx context.Context, activityName, email string) (*dto.MessageResponse, error) {
	if err := s.activityRepo.AddParticipant(ctx, activityName, email); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "participant signed up",
		zap.String("activity", activityName),
		zap.String("email", email),
	)
	if s.signups != nil {
		s.signups.Inc(ctx, telemetry.ActivityAttr(activityName))
	}

	return &dto.MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activityName),
	}, nil
}

// Unregister removes email from the named activity
func (s *activityService) Unregister(ctx context.Context, activityName, email string) (*dto.MessageResponse, error) {
	if err := s.activityRepo.RemoveParticipant(ctx, activityName, email); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "participant unregistered",
		zap.String("activity", activityName),
		zap.String("email", email),
	)
	if s.unregistrations != nil {
		s.unregistrations.Inc(ctx, telemetry.ActivityAttr(activityName))
	}

	return &dto.MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activityName),
	}, nil
}

// toActivityResponse converts domain.Activity to dto.ActivityResponse
func toActivityResponse(activity *domain.Activity) *dto.ActivityResponse {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}
	return &dto.ActivityResponse{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}
