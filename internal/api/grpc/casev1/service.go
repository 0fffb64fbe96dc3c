// Package casev1 describes the casekeeper.v1.CaseService gRPC service.
//
// Every request and response is a google.protobuf.Struct, so the service
// needs no generated message types. Field names are snake_case.
package casev1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "casekeeper.v1.CaseService"

// CaseServiceServer is the server API for the case service.
type CaseServiceServer interface {
	CreateCase(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCase(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCases(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateStep(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UnlockCase(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitPreQuestionnaire(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SelectLawyer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	IsLawyerSelected(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApproveCaseByUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApproveCaseByLawyer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ApproveCaseByManager(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AssignCaseManager(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ChangeWorkflowStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	InvitePartner(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AcceptInvite(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemovePartner(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetDraftAgreementURL(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetSealedSnapshotURL(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(CaseServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CaseServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(CaseServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// CaseServiceDesc is the grpc.ServiceDesc for the case service.
var CaseServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CaseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("CreateCase", CaseServiceServer.CreateCase),
		unaryMethod("GetCase", CaseServiceServer.GetCase),
		unaryMethod("ListCases", CaseServiceServer.ListCases),
		unaryMethod("UpdateStep", CaseServiceServer.UpdateStep),
		unaryMethod("UnlockCase", CaseServiceServer.UnlockCase),
		unaryMethod("SubmitPreQuestionnaire", CaseServiceServer.SubmitPreQuestionnaire),
		unaryMethod("SelectLawyer", CaseServiceServer.SelectLawyer),
		unaryMethod("IsLawyerSelected", CaseServiceServer.IsLawyerSelected),
		unaryMethod("ApproveCaseByUser", CaseServiceServer.ApproveCaseByUser),
		unaryMethod("ApproveCaseByLawyer", CaseServiceServer.ApproveCaseByLawyer),
		unaryMethod("ApproveCaseByManager", CaseServiceServer.ApproveCaseByManager),
		unaryMethod("AssignCaseManager", CaseServiceServer.AssignCaseManager),
		unaryMethod("ChangeWorkflowStatus", CaseServiceServer.ChangeWorkflowStatus),
		unaryMethod("InvitePartner", CaseServiceServer.InvitePartner),
		unaryMethod("AcceptInvite", CaseServiceServer.AcceptInvite),
		unaryMethod("RemovePartner", CaseServiceServer.RemovePartner),
		unaryMethod("SetDraftAgreementURL", CaseServiceServer.SetDraftAgreementURL),
		unaryMethod("GetSealedSnapshotURL", CaseServiceServer.GetSealedSnapshotURL),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "casekeeper/v1/case.proto",
}

// RegisterCaseServiceServer registers srv on s.
func RegisterCaseServiceServer(s grpc.ServiceRegistrar, srv CaseServiceServer) {
	s.RegisterService(&CaseServiceDesc, srv)
}

// CaseServiceClient calls the case service over a client connection.
type CaseServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCaseServiceClient(cc grpc.ClientConnInterface) *CaseServiceClient {
	return &CaseServiceClient{cc: cc}
}

// Call invokes the unary method with the given short name, for example "GetCase".
func (c *CaseServiceClient) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
