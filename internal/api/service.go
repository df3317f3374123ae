package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "lifeweeks.v1.Timeline"

const (
	MethodPing             = "/" + ServiceName + "/Ping"
	MethodRegister         = "/" + ServiceName + "/Register"
	MethodLogin            = "/" + ServiceName + "/Login"
	MethodRefreshToken     = "/" + ServiceName + "/RefreshToken"
	MethodLogout           = "/" + ServiceName + "/Logout"
	MethodGetProfile       = "/" + ServiceName + "/GetProfile"
	MethodUpdateProfile    = "/" + ServiceName + "/UpdateProfile"
	MethodListEvents       = "/" + ServiceName + "/ListEvents"
	MethodCreateEvent      = "/" + ServiceName + "/CreateEvent"
	MethodUpdateEvent      = "/" + ServiceName + "/UpdateEvent"
	MethodDeleteEvent      = "/" + ServiceName + "/DeleteEvent"
	MethodUploadAttachment = "/" + ServiceName + "/UploadAttachment"
	MethodDeleteAttachment = "/" + ServiceName + "/DeleteAttachment"
	MethodGetAttachmentURL = "/" + ServiceName + "/GetAttachmentURL"
)

// TimelineServer is implemented by the server side of the service.
type TimelineServer interface {
	Ping(context.Context, *Empty) (*PingResponse, error)
	Register(context.Context, *RegisterRequest) (*TokenPair, error)
	Login(context.Context, *LoginRequest) (*TokenPair, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*TokenPair, error)
	Logout(context.Context, *RefreshTokenRequest) (*Empty, error)
	GetProfile(context.Context, *Empty) (*Profile, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*Profile, error)
	ListEvents(context.Context, *Empty) (*ListEventsResponse, error)
	CreateEvent(context.Context, *CreateEventRequest) (*Event, error)
	UpdateEvent(context.Context, *UpdateEventRequest) (*Event, error)
	DeleteEvent(context.Context, *IDRequest) (*Empty, error)
	UploadAttachment(context.Context, *UploadAttachmentRequest) (*Attachment, error)
	DeleteAttachment(context.Context, *IDRequest) (*Empty, error)
	GetAttachmentURL(context.Context, *AttachmentURLRequest) (*AttachmentURLResponse, error)
}

// UnimplementedTimelineServer answers every method with codes.Unimplemented.
// Embed it to implement a subset.
type UnimplementedTimelineServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedTimelineServer) Ping(context.Context, *Empty) (*PingResponse, error) {
	return nil, unimplemented("Ping")
}
func (UnimplementedTimelineServer) Register(context.Context, *RegisterRequest) (*TokenPair, error) {
	return nil, unimplemented("Register")
}
func (UnimplementedTimelineServer) Login(context.Context, *LoginRequest) (*TokenPair, error) {
	return nil, unimplemented("Login")
}
func (UnimplementedTimelineServer) RefreshToken(context.Context, *RefreshTokenRequest) (*TokenPair, error) {
	return nil, unimplemented("RefreshToken")
}
func (UnimplementedTimelineServer) Logout(context.Context, *RefreshTokenRequest) (*Empty, error) {
	return nil, unimplemented("Logout")
}
func (UnimplementedTimelineServer) GetProfile(context.Context, *Empty) (*Profile, error) {
	return nil, unimplemented("GetProfile")
}
func (UnimplementedTimelineServer) UpdateProfile(context.Context, *UpdateProfileRequest) (*Profile, error) {
	return nil, unimplemented("UpdateProfile")
}
func (UnimplementedTimelineServer) ListEvents(context.Context, *Empty) (*ListEventsResponse, error) {
	return nil, unimplemented("ListEvents")
}
func (UnimplementedTimelineServer) CreateEvent(context.Context, *CreateEventRequest) (*Event, error) {
	return nil, unimplemented("CreateEvent")
}
func (UnimplementedTimelineServer) UpdateEvent(context.Context, *UpdateEventRequest) (*Event, error) {
	return nil, unimplemented("UpdateEvent")
}
func (UnimplementedTimelineServer) DeleteEvent(context.Context, *IDRequest) (*Empty, error) {
	return nil, unimplemented("DeleteEvent")
}
func (UnimplementedTimelineServer) UploadAttachment(context.Context, *UploadAttachmentRequest) (*Attachment, error) {
	return nil, unimplemented("UploadAttachment")
}
func (UnimplementedTimelineServer) DeleteAttachment(context.Context, *IDRequest) (*Empty, error) {
	return nil, unimplemented("DeleteAttachment")
}
func (UnimplementedTimelineServer) GetAttachmentURL(context.Context, *AttachmentURLRequest) (*AttachmentURLResponse, error) {
	return nil, unimplemented("GetAttachmentURL")
}

// unary builds a method descriptor that decodes Req and dispatches to call,
// running the server's interceptor chain when one is installed.
func unary[Req, Resp any](name string, call func(TimelineServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(TimelineServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(TimelineServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// TimelineServiceDesc describes lifeweeks.v1.Timeline for grpc.Server.
var TimelineServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TimelineServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Ping", TimelineServer.Ping),
		unary("Register", TimelineServer.Register),
		unary("Login", TimelineServer.Login),
		unary("RefreshToken", TimelineServer.RefreshToken),
		unary("Logout", TimelineServer.Logout),
		unary("GetProfile", TimelineServer.GetProfile),
		unary("UpdateProfile", TimelineServer.UpdateProfile),
		unary("ListEvents", TimelineServer.ListEvents),
		unary("CreateEvent", TimelineServer.CreateEvent),
		unary("UpdateEvent", TimelineServer.UpdateEvent),
		unary("DeleteEvent", TimelineServer.DeleteEvent),
		unary("UploadAttachment", TimelineServer.UploadAttachment),
		unary("DeleteAttachment", TimelineServer.DeleteAttachment),
		unary("GetAttachmentURL", TimelineServer.GetAttachmentURL),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lifeweeks/v1/timeline",
}

func RegisterTimelineServer(s grpc.ServiceRegistrar, srv TimelineServer) {
	s.RegisterService(&TimelineServiceDesc, srv)
}
