package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/api"
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
	"github.com/dmitrijs2005/lifeweeks/internal/server/services"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *api.Empty) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

// Register opens the account and signs the new user in.
func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.TokenPair, error) {
	s.logger.Info(ctx, "Registration request")

	u, err := s.svc.Users.Register(ctx, services.Registration{
		Email:     req.Email,
		Password:  req.Password,
		FullName:  req.FullName,
		Birthdate: req.Birthdate,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "register", err)
	}

	tokens, err := s.svc.Users.Login(ctx, u.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "login after register", err)
	}

	s.logger.Info(ctx, "Registered", "user_id", u.ID)
	return &api.TokenPair{UserID: u.ID, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.TokenPair, error) {
	tokens, err := s.svc.Users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, "login", err)
	}
	return &api.TokenPair{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *api.RefreshTokenRequest) (*api.TokenPair, error) {
	tokens, err := s.svc.Users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, "refresh token", err)
	}
	return &api.TokenPair{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *api.RefreshTokenRequest) (*api.Empty, error) {
	if err := s.svc.Users.Logout(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus(ctx, "logout", err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, _ *api.Empty) (*api.Profile, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.svc.Profiles.Get(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "get profile", err)
	}
	return toAPIProfile(p), nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (*api.Profile, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.svc.Profiles.Update(ctx, userID, services.ProfileUpdate{
		FullName:  req.FullName,
		Email:     req.Email,
		Birthdate: req.Birthdate,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "update profile", err)
	}
	return toAPIProfile(p), nil
}

func (s *GRPCServer) ListEvents(ctx context.Context, _ *api.Empty) (*api.ListEventsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.svc.Events.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, "list events", err)
	}
	out := &api.ListEventsResponse{Events: make([]api.Event, 0, len(events))}
	for _, e := range events {
		out.Events = append(out.Events, *toAPIEvent(e))
	}
	return out, nil
}

func (s *GRPCServer) CreateEvent(ctx context.Context, req *api.CreateEventRequest) (*api.Event, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.svc.Events.Create(ctx, userID, services.EventInput{
		Title:               req.Title,
		Description:         req.Description,
		Date:                req.Date,
		Category:            req.Category,
		Color:               req.Color,
		NotifyOnAnniversary: req.NotifyOnAnniversary,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "create event", err)
	}
	return toAPIEvent(e), nil
}

func (s *GRPCServer) UpdateEvent(ctx context.Context, req *api.UpdateEventRequest) (*api.Event, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.svc.Events.Update(ctx, userID, req.ID, models.EventPatch{
		Title:               req.Title,
		Description:         req.Description,
		Date:                req.Date,
		Category:            req.Category,
		Color:               req.Color,
		NotifyOnAnniversary: req.NotifyOnAnniversary,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "update event", err)
	}
	return toAPIEvent(e), nil
}

func (s *GRPCServer) DeleteEvent(ctx context.Context, req *api.IDRequest) (*api.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Events.Delete(ctx, userID, req.ID); err != nil {
		return nil, s.toStatus(ctx, "delete event", err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) UploadAttachment(ctx context.Context, req *api.UploadAttachmentRequest) (*api.Attachment, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.svc.Attachments.Upload(ctx, userID, services.Upload{
		EventID:     req.EventID,
		FileName:    req.FileName,
		MimeType:    req.MimeType,
		Description: req.Description,
		Data:        req.Data,
	})
	if err != nil {
		return nil, s.toStatus(ctx, "upload attachment", err)
	}
	return toAPIAttachment(a), nil
}

func (s *GRPCServer) DeleteAttachment(ctx context.Context, req *api.IDRequest) (*api.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Attachments.Delete(ctx, userID, req.ID); err != nil {
		return nil, s.toStatus(ctx, "delete attachment", err)
	}
	return &api.Empty{}, nil
}

func (s *GRPCServer) GetAttachmentURL(ctx context.Context, req *api.AttachmentURLRequest) (*api.AttachmentURLResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	url, expires, err := s.svc.Attachments.SignedURL(ctx, userID, req.ID, time.Duration(req.TTLSeconds)*time.Second)
	if err != nil {
		return nil, s.toStatus(ctx, "attachment url", err)
	}
	return &api.AttachmentURLResponse{URL: url, ExpiresAt: expires}, nil
}

func toAPIProfile(p *models.Profile) *api.Profile {
	return &api.Profile{
		UserID:    p.UserID,
		FullName:  p.FullName,
		Email:     p.Email,
		Birthdate: p.Birthdate,
		CreatedAt: p.CreatedAt,
	}
}

func toAPIAttachment(a *models.Attachment) *api.Attachment {
	return &api.Attachment{
		ID:          a.ID,
		EventID:     a.EventID,
		FileName:    a.FileName,
		FileSize:    a.FileSize,
		FileType:    a.FileType,
		StoragePath: a.StoragePath,
		UploadDate:  a.UploadDate,
		Description: a.Description,
	}
}

func toAPIEvent(e *models.Event) *api.Event {
	out := &api.Event{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		Date:                e.Date,
		WeekNumber:          e.WeekNumber,
		Category:            e.Category,
		Color:               e.Color,
		NotifyOnAnniversary: e.NotifyOnAnniversary,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
	for _, a := range e.Attachments {
		out.Attachments = append(out.Attachments, *toAPIAttachment(a))
	}
	return out
}
