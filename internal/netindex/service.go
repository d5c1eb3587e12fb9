// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package netindex

import (
	"context"

	"google.golang.org/grpc"
)

// IndexServer is implemented by servers exposing a B+ tree index over grpc.
type IndexServer interface {
	Insert(context.Context, *InsertRequest) (*InsertResponse, error)
	Erase(context.Context, *EraseRequest) (*EraseResponse, error)
	Find(context.Context, *FindRequest) (*FindResponse, error)
	Dump(context.Context, *DumpRequest) (*DumpResponse, error)
}

// Request and response messages. These are carried over the wire by Codec
// (§ codec.go) rather than by protoc-generated marshalling, so they need no
// generated Reset/String/ProtoMessage methods.
type (
	InsertRequest  struct{ Key int64 }
	InsertResponse struct{ Inserted bool }
	EraseRequest   struct{ Key int64 }
	EraseResponse  struct{ Erased bool }
	FindRequest    struct{ Key int64 }
	FindResponse   struct{ Found bool }
	DumpRequest    struct{}
	DumpResponse   struct{ Text string }
)

// RegisterIndexServer registers srv with s under the Index service name.
func RegisterIndexServer(s grpc.ServiceRegistrar, srv IndexServer) {
	s.RegisterService(&indexServiceDesc, srv)
}

// The method handlers below have exactly the shape protoc-gen-go-grpc
// generates: decode the request, run it through the interceptor chain, and
// dispatch to the server implementation. That shape is part of grpc's
// stable, documented contract for grpc.MethodDesc, not an implementation
// detail of the code generator, so it is safe to write by hand here in the
// absence of a .proto file.

func indexInsertHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InsertRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexServer).Insert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/netindex.Index/Insert"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IndexServer).Insert(ctx, req.(*InsertRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func indexEraseHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EraseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexServer).Erase(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/netindex.Index/Erase"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IndexServer).Erase(ctx, req.(*EraseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func indexFindHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FindRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexServer).Find(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/netindex.Index/Find"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IndexServer).Find(ctx, req.(*FindRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func indexDumpHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DumpRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexServer).Dump(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/netindex.Index/Dump"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IndexServer).Dump(ctx, req.(*DumpRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var indexServiceDesc = grpc.ServiceDesc{
	ServiceName: "netindex.Index",
	HandlerType: (*IndexServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Insert", Handler: indexInsertHandler},
		{MethodName: "Erase", Handler: indexEraseHandler},
		{MethodName: "Find", Handler: indexFindHandler},
		{MethodName: "Dump", Handler: indexDumpHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "netindex.proto",
}
