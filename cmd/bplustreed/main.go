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

// Package main implements the bplustree index server: a grpc front end
// exposing a single B+ tree over the network for Insert, Erase, Find, and
// Dump.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"

	"github.com/golang/glog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"

	"github.com/dbindex/bplustree/internal/netindex"
)

func main() {
	port := flag.Int("p", 50051, "the server port")
	order := flag.Int("order", 3, "the B+ tree's branching factor")
	flag.Parse()

	if err := serve(*port, *order); err != nil {
		glog.Fatalf("failed to serve: %v", err)
	}
}

func serve(port, order int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	server := newServer(order)
	glog.Infof("server listening at %v", lis.Addr())

	return server.Serve(lis)
}

func newServer(order int) *grpc.Server {
	server := grpc.NewServer(
		grpc.ForceServerCodec(netindex.Codec),
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
		),
	)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt)
	go func(done <-chan os.Signal, server *grpc.Server) {
		<-done
		server.GracefulStop()
	}(done, server)

	netindex.RegisterIndexServer(server, netindex.NewServer(order))

	return server
}
