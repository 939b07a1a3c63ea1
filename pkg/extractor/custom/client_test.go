package custom_test

import (
	"context"
	"encoding/base64"
	"errors"
	"net"
	"testing"

	"github.com/adrianliechti/toolify/pkg/errdefs"
	"github.com/adrianliechti/toolify/pkg/extractor"
	"github.com/adrianliechti/toolify/pkg/extractor/custom"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

func startServer(t *testing.T, handler func(*structpb.Struct) (*structpb.Struct, error)) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	desc := grpc.ServiceDesc{
		ServiceName: "extractor.Extractor",
		HandlerType: (*any)(nil),

		Methods: []grpc.MethodDesc{
			{
				MethodName: "Extract",
				Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
					in := new(structpb.Struct)

					if err := dec(in); err != nil {
						return nil, err
					}

					return handler(in)
				},
			},
		},
	}

	s := grpc.NewServer()
	s.RegisterService(&desc, struct{}{})

	go s.Serve(lis)
	t.Cleanup(s.Stop)

	return "grpc://" + lis.Addr().String()
}

func TestExtract(t *testing.T) {
	url := startServer(t, func(in *structpb.Struct) (*structpb.Struct, error) {
		fields := in.GetFields()

		data, err := base64.StdEncoding.DecodeString(fields["content"].GetStringValue())

		if err != nil {
			return nil, err
		}

		return structpb.NewStruct(map[string]any{
			"text": fields["content_type"].GetStringValue() + ": " + string(data),
		})
	})

	c, err := custom.New(url)
	require.NoError(t, err)
	defer c.Close()

	doc, err := c.Extract(context.Background(), extractor.File{
		Name:        "a.pdf",
		Content:     []byte("hello"),
		ContentType: "application/pdf",
	}, nil)

	require.NoError(t, err)
	require.Equal(t, "application/pdf: hello", doc.Text)
}

func TestExtractEmpty(t *testing.T) {
	url := startServer(t, func(in *structpb.Struct) (*structpb.Struct, error) {
		return structpb.NewStruct(map[string]any{})
	})

	c, err := custom.New(url)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Extract(context.Background(), extractor.File{
		Content:     []byte("hello"),
		ContentType: "application/pdf",
	}, nil)

	require.True(t, errors.Is(err, errdefs.ErrExtraction))
}

func TestNewInvalidURL(t *testing.T) {
	_, err := custom.New("http://localhost:50051")
	require.Error(t, err)
}
