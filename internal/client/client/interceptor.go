package client

import (
	"context"

	"github.com/dmitrijs2005/lifeweeks/internal/api"
	"github.com/dmitrijs2005/lifeweeks/internal/client/session"
	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var publicMethods = map[string]bool{
	api.MethodPing:         true,
	api.MethodRegister:     true,
	api.MethodLogin:        true,
	api.MethodRefreshToken: true,
	api.MethodLogout:       true,
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the session's access token. When the
// server reports it expired, the refresh token is rotated once, persisted
// and the call retried.
func (c *Client) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if publicMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	sess, err := c.session()
	if err != nil {
		return err
	}

	err = invoker(withAccessToken(ctx, sess.AccessToken), method, req, reply, cc, opts...)
	if status.Code(err) != codes.Unauthenticated || status.Convert(err).Message() != common.ErrTokenExpired.Error() {
		return err
	}

	refreshed, rerr := c.refresh(ctx, sess, cc, invoker)
	if rerr != nil {
		return rerr
	}
	return invoker(withAccessToken(ctx, refreshed.AccessToken), method, req, reply, cc, opts...)
}

func (c *Client) refresh(ctx context.Context, sess *session.Session, cc *grpc.ClientConn, invoker grpc.UnaryInvoker) (*session.Session, error) {
	if sess.RefreshToken == "" {
		return nil, errNoRefreshToken
	}

	var tp api.TokenPair
	err := invoker(ctx, api.MethodRefreshToken, &api.RefreshTokenRequest{RefreshToken: sess.RefreshToken}, &tp, cc,
		grpc.CallContentSubtype(api.CodecName))
	if err != nil {
		return nil, err
	}

	next := *sess
	next.AccessToken = tp.AccessToken
	next.RefreshToken = tp.RefreshToken
	if err := c.saveSession(&next); err != nil {
		return nil, err
	}
	return &next, nil
}
