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

import "encoding/json"

// jsonCodec is a grpc encoding.Codec for the netindex service. The service
// has no protoc-generated wire messages, so instead of the "proto" codec
// grpc.NewServer installs by default, the server and any client are wired
// up with grpc.ForceServerCodec(Codec) / grpc.ForceCodec(Codec), which
// is exactly the extension point google.golang.org/grpc documents for
// non-protobuf payloads.
type jsonCodec struct{}

// Codec is the jsonCodec value used to override grpc's default "proto"
// codec for this service.
var Codec = jsonCodec{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return "json"
}
