package router

import (
	"context"
	"runtime/debug"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/dtroode/casekeeper-server/internal/api/grpc/casev1"
	"github.com/dtroode/casekeeper-server/internal/api/grpc/handler"
	"github.com/dtroode/casekeeper-server/internal/api/grpc/middleware"
	"github.com/dtroode/casekeeper-server/internal/logger"
	"github.com/dtroode/casekeeper-server/internal/model"
)

// Router wires the case service, interceptors and health checks into a gRPC server.
type Router struct {
	caseService    handler.CaseService
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	caseService handler.CaseService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		caseService:    caseService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// authRequired skips authentication for the health service only.
func authRequired(_ context.Context, c interceptors.CallMeta) bool {
	return c.Service != healthpb.Health_ServiceDesc.ServiceName
}

// Register builds the gRPC server with recovery, authentication and request
// logging interceptors and registers every service.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.contextManager, r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	recoveryOpt := recovery.WithRecoveryHandler(r.recoverPanic)

	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoveryOpt),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
			logging.HandleGRPC,
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(authRequired),
			),
		),
	)
	r.registerCaseRoutes(s)
	r.registerHealth(s)

	return s
}

func (r *Router) recoverPanic(p any) error {
	r.logger.Error("gRPC handler panicked", "panic", p, "stack", string(debug.Stack()))
	return status.Error(codes.Internal, "internal server error")
}

func (r *Router) registerCaseRoutes(server *grpc.Server) {
	caseHandler := handler.NewCase(r.caseService, r.contextManager, r.logger)
	casev1.RegisterCaseServiceServer(server, caseHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(casev1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)
}
