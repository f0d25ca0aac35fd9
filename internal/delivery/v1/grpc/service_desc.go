package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "storefront.v1.StorefrontService"

// StorefrontServer — сервис витрины. Запросы и ответы передаются как google.protobuf.Struct
// с теми же именами полей, что и в REST API.
type StorefrontServer interface {
	ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetProductsInfo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	GetMetadata(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	ListServices(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	QuoteCart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(srv StorefrontServer, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

var StorefrontServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServer)(nil),
	Methods: []grpc.MethodDesc{
		methodDesc("ListProducts", StorefrontServer.ListProducts),
		methodDesc("GetProduct", StorefrontServer.GetProduct),
		methodDesc("GetProductsInfo", StorefrontServer.GetProductsInfo),
		methodDesc("GetMetadata", StorefrontServer.GetMetadata),
		methodDesc("ListServices", StorefrontServer.ListServices),
		methodDesc("QuoteCart", StorefrontServer.QuoteCart),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/storefront.proto",
}

func RegisterStorefrontServer(s grpc.ServiceRegistrar, srv StorefrontServer) {
	s.RegisterService(&StorefrontServiceDesc, srv)
}

func methodDesc(name string, call unaryMethod) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name

	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(StorefrontServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(StorefrontServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// StorefrontClient — клиент сервиса витрины.
type StorefrontClient struct {
	cc grpc.ClientConnInterface
}

func NewStorefrontClient(cc grpc.ClientConnInterface) *StorefrontClient {
	return &StorefrontClient{cc: cc}
}

func (c *StorefrontClient) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
