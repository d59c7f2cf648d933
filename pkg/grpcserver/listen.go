package grpcserver

import (
	"context"
	"log"
	"net"

	"google.golang.org/grpc"
)

// ListenAndServe binds addr, registers every service onto a new
// *grpc.Server, and serves until ctx is cancelled, at which point it
// stops the server gracefully and returns.
func (s *Server) ListenAndServe(ctx context.Context, addr string, logger *log.Logger) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	s.Register(grpcServer)

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s", addr)
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}
