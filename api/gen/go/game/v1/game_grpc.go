package gamev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	platformgrpc "github.com/fridge-dev/frj-game-ngn-sub000/internal/platform/grpc"
)

const (
	GameService_ServiceName                       = "game.v1.GameService"
	GameService_HostGame_FullMethodName           = "/game.v1.GameService/HostGame"
	GameService_JoinGame_FullMethodName           = "/game.v1.GameService/JoinGame"
	GameService_StartGame_FullMethodName          = "/game.v1.GameService/StartGame"
	GameService_OpenGameDataStream_FullMethodName = "/game.v1.GameService/OpenGameDataStream"
)

// GameServiceClient is the client API for GameService. Every call is sent
// with the msgpack content-subtype.
type GameServiceClient interface {
	HostGame(ctx context.Context, in *HostGameRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[LobbyMessage], error)
	JoinGame(ctx context.Context, in *JoinGameRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[LobbyMessage], error)
	StartGame(ctx context.Context, in *StartGameRequest, opts ...grpc.CallOption) (*StartGameResponse, error)
	OpenGameDataStream(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[GameDataClientMessage, GameDataServerMessage], error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.StaticMethod(), platformgrpc.CallOption()}, opts...)
}

func (c *gameServiceClient) HostGame(ctx context.Context, in *HostGameRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[LobbyMessage], error) {
	stream, err := c.cc.NewStream(ctx, &GameService_ServiceDesc.Streams[0], GameService_HostGame_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[HostGameRequest, LobbyMessage]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *gameServiceClient) JoinGame(ctx context.Context, in *JoinGameRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[LobbyMessage], error) {
	stream, err := c.cc.NewStream(ctx, &GameService_ServiceDesc.Streams[1], GameService_JoinGame_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[JoinGameRequest, LobbyMessage]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

func (c *gameServiceClient) StartGame(ctx context.Context, in *StartGameRequest, opts ...grpc.CallOption) (*StartGameResponse, error) {
	out := new(StartGameResponse)
	if err := c.cc.Invoke(ctx, GameService_StartGame_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) OpenGameDataStream(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[GameDataClientMessage, GameDataServerMessage], error) {
	stream, err := c.cc.NewStream(ctx, &GameService_ServiceDesc.Streams[2], GameService_OpenGameDataStream_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[GameDataClientMessage, GameDataServerMessage]{ClientStream: stream}, nil
}

// GameServiceServer is the server API for GameService. Implementations must
// embed UnimplementedGameServiceServer.
type GameServiceServer interface {
	// HostGame creates the lobby if absent, joins it and streams lobby
	// updates until the game starts.
	HostGame(*HostGameRequest, grpc.ServerStreamingServer[LobbyMessage]) error
	// JoinGame joins an existing lobby and streams lobby updates.
	JoinGame(*JoinGameRequest, grpc.ServerStreamingServer[LobbyMessage]) error
	// StartGame is called by the lobby leader.
	StartGame(context.Context, *StartGameRequest) (*StartGameResponse, error)
	// OpenGameDataStream carries actions in and personalised state out.
	OpenGameDataStream(grpc.BidiStreamingServer[GameDataClientMessage, GameDataServerMessage]) error
	mustEmbedUnimplementedGameServiceServer()
}

// UnimplementedGameServiceServer answers every call with Unimplemented.
type UnimplementedGameServiceServer struct{}

func (UnimplementedGameServiceServer) HostGame(*HostGameRequest, grpc.ServerStreamingServer[LobbyMessage]) error {
	return status.Errorf(codes.Unimplemented, "method HostGame not implemented")
}
func (UnimplementedGameServiceServer) JoinGame(*JoinGameRequest, grpc.ServerStreamingServer[LobbyMessage]) error {
	return status.Errorf(codes.Unimplemented, "method JoinGame not implemented")
}
func (UnimplementedGameServiceServer) StartGame(context.Context, *StartGameRequest) (*StartGameResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartGame not implemented")
}
func (UnimplementedGameServiceServer) OpenGameDataStream(grpc.BidiStreamingServer[GameDataClientMessage, GameDataServerMessage]) error {
	return status.Errorf(codes.Unimplemented, "method OpenGameDataStream not implemented")
}
func (UnimplementedGameServiceServer) mustEmbedUnimplementedGameServiceServer() {}

func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameService_ServiceDesc, srv)
}

func _GameService_HostGame_Handler(srv any, stream grpc.ServerStream) error {
	m := new(HostGameRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(GameServiceServer).HostGame(m, &grpc.GenericServerStream[HostGameRequest, LobbyMessage]{ServerStream: stream})
}

func _GameService_JoinGame_Handler(srv any, stream grpc.ServerStream) error {
	m := new(JoinGameRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(GameServiceServer).JoinGame(m, &grpc.GenericServerStream[JoinGameRequest, LobbyMessage]{ServerStream: stream})
}

func _GameService_StartGame_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StartGameRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).StartGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GameService_StartGame_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GameServiceServer).StartGame(ctx, req.(*StartGameRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_OpenGameDataStream_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(GameServiceServer).OpenGameDataStream(&grpc.GenericServerStream[GameDataClientMessage, GameDataServerMessage]{ServerStream: stream})
}

// GameService_ServiceDesc is the grpc.ServiceDesc for GameService.
var GameService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: GameService_ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartGame",
			Handler:    _GameService_StartGame_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "HostGame",
			Handler:       _GameService_HostGame_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "JoinGame",
			Handler:       _GameService_JoinGame_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "OpenGameDataStream",
			Handler:       _GameService_OpenGameDataStream_Handler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "game/v1/game.msgpack",
}
