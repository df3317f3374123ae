// Package client is the CLI's connection to the lifeweeks server. It keeps
// the session's tokens on every call, refreshes an expired access token
// once per call and maps gRPC statuses to the shared sentinel errors.
package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/api"
	"github.com/dmitrijs2005/lifeweeks/internal/catalog"
	"github.com/dmitrijs2005/lifeweeks/internal/client/session"
	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"github.com/dmitrijs2005/lifeweeks/internal/filex"
	"github.com/dmitrijs2005/lifeweeks/internal/netx"
	"github.com/dmitrijs2005/lifeweeks/internal/timeline"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Client struct {
	conn     *grpc.ClientConn
	api      api.TimelineClient
	sessions *session.Store
	timeout  time.Duration
	now      func() time.Time

	mu   sync.Mutex
	sess *session.Session
}

// New connects lazily to addr. Extra dial options are appended, which is
// how tests inject an in-memory dialer.
func New(addr string, store *session.Store, timeout time.Duration, opts ...grpc.DialOption) (*Client, error) {
	c := &Client{sessions: store, timeout: timeout, now: time.Now}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(api.MaxMessageSize),
			grpc.MaxCallSendMsgSize(api.MaxMessageSize),
		),
	}, opts...)

	conn, err := grpc.NewClient(addr, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.api = api.NewTimelineClient(conn)
	return c, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	_, err := c.api.Ping(ctx, &api.Empty{})
	return mapError(err)
}

// Register opens an account and signs in.
func (c *Client) Register(ctx context.Context, email string, password []byte, fullName string, birthdate time.Time) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	tp, err := c.api.Register(ctx, &api.RegisterRequest{
		Email:     email,
		Password:  string(password),
		FullName:  fullName,
		Birthdate: timeline.Date(birthdate),
	})
	if err != nil {
		return mapError(err)
	}
	return c.saveSession(&session.Session{UserID: tp.UserID, Email: email, AccessToken: tp.AccessToken, RefreshToken: tp.RefreshToken})
}

// Login signs in and records the user id from the profile.
func (c *Client) Login(ctx context.Context, email string, password []byte) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	tp, err := c.api.Login(ctx, &api.LoginRequest{Email: email, Password: string(password)})
	if err != nil {
		return mapError(err)
	}
	sess := &session.Session{Email: email, AccessToken: tp.AccessToken, RefreshToken: tp.RefreshToken}
	if err := c.saveSession(sess); err != nil {
		return err
	}

	p, err := c.api.GetProfile(ctx, &api.Empty{})
	if err != nil {
		return mapError(err)
	}
	sess.UserID = p.UserID
	return c.saveSession(sess)
}

// Logout revokes the refresh token when the server is reachable and always
// forgets the local session.
func (c *Client) Logout(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	var remoteErr error
	if sess, err := c.session(); err == nil {
		_, remoteErr = c.api.Logout(ctx, &api.RefreshTokenRequest{RefreshToken: sess.RefreshToken})
	}

	c.mu.Lock()
	c.sess = nil
	c.mu.Unlock()
	if err := c.sessions.Clear(); err != nil {
		return err
	}
	return mapError(remoteErr)
}

// CurrentUserID reports the signed-in user, if any.
func (c *Client) CurrentUserID() (string, bool) {
	sess, err := c.session()
	if err != nil || sess.UserID == "" {
		return "", false
	}
	return sess.UserID, true
}

func (c *Client) Profile(ctx context.Context) (timeline.Profile, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	p, err := c.api.GetProfile(ctx, &api.Empty{})
	if err != nil {
		return timeline.Profile{}, mapError(err)
	}
	return p.Timeline(), nil
}

func (c *Client) UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (timeline.Profile, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	p, err := c.api.UpdateProfile(ctx, req)
	if err != nil {
		return timeline.Profile{}, mapError(err)
	}
	return p.Timeline(), nil
}

// Events returns the user's events ordered by date with their attachments.
func (c *Client) Events(ctx context.Context) ([]timeline.Event, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.api.ListEvents(ctx, &api.Empty{})
	if err != nil {
		return nil, mapError(err)
	}
	return api.TimelineEvents(resp.Events), nil
}

// CreateEvent satisfies catalog.Creator, so catalog imports go through here too.
func (c *Client) CreateEvent(ctx context.Context, d catalog.EventDraft) (timeline.Event, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	e, err := c.api.CreateEvent(ctx, &api.CreateEventRequest{
		Title:               d.Title,
		Description:         d.Description,
		Date:                timeline.Date(d.Date),
		Category:            d.Category,
		Color:               d.Color,
		NotifyOnAnniversary: d.NotifyOnAnniversary,
	})
	if err != nil {
		return timeline.Event{}, mapError(err)
	}
	return e.Timeline(), nil
}

func (c *Client) UpdateEvent(ctx context.Context, req *api.UpdateEventRequest) (timeline.Event, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	e, err := c.api.UpdateEvent(ctx, req)
	if err != nil {
		return timeline.Event{}, mapError(err)
	}
	return e.Timeline(), nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.api.DeleteEvent(ctx, &api.IDRequest{ID: id})
	return mapError(err)
}

// UploadAttachment checks the file against the upload policy before
// reading it, then sends it in one message.
func (c *Client) UploadAttachment(ctx context.Context, eventID, path, description string) (timeline.Attachment, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return timeline.Attachment{}, err
	}
	if fi.IsDir() {
		return timeline.Attachment{}, fmt.Errorf("%w: %s is a directory", common.ErrorValidation, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return timeline.Attachment{}, err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(f, head)
	mimeType := filex.DetectType(path, head[:n])
	if err := filex.Validate(fi.Size(), mimeType); err != nil {
		return timeline.Attachment{}, err
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return timeline.Attachment{}, err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return timeline.Attachment{}, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	a, err := c.api.UploadAttachment(ctx, &api.UploadAttachmentRequest{
		EventID:     eventID,
		FileName:    filepath.Base(path),
		MimeType:    mimeType,
		Description: description,
		Data:        data,
	})
	if err != nil {
		return timeline.Attachment{}, mapError(err)
	}
	return a.Timeline(), nil
}

func (c *Client) DeleteAttachment(ctx context.Context, id string) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	_, err := c.api.DeleteAttachment(ctx, &api.IDRequest{ID: id})
	return mapError(err)
}

// AttachmentURL returns a signed download link; ttl <= 0 means the server default.
func (c *Client) AttachmentURL(ctx context.Context, id string, ttl time.Duration) (string, time.Time, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.api.GetAttachmentURL(ctx, &api.AttachmentURLRequest{ID: id, TTLSeconds: int64(ttl / time.Second)})
	if err != nil {
		return "", time.Time{}, mapError(err)
	}
	return resp.URL, resp.ExpiresAt, nil
}

// DownloadAttachment fetches a signed URL and streams the file into w.
func (c *Client) DownloadAttachment(ctx context.Context, id string, w io.Writer) (int64, error) {
	url, _, err := c.AttachmentURL(ctx, id, 0)
	if err != nil {
		return 0, err
	}
	return netx.DownloadSignedURL(ctx, url, w)
}

func (c *Client) session() (*session.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess != nil {
		return c.sess, nil
	}
	sess, err := c.sessions.Load()
	if err != nil {
		return nil, err
	}
	c.sess = sess
	return sess, nil
}

func (c *Client) saveSession(sess *session.Session) error {
	sess.SavedAt = c.now()
	if err := c.sessions.Save(sess); err != nil {
		return err
	}
	c.mu.Lock()
	c.sess = sess
	c.mu.Unlock()
	return nil
}
