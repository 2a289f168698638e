package llm

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/mgx-dev/mgx/pkg/config"
	"github.com/mgx-dev/mgx/pkg/models"
	llmv1 "github.com/mgx-dev/mgx/proto"
)

// GRPCCompleter implements Completer against the completion sidecar.
type GRPCCompleter struct {
	conn   *grpc.ClientConn
	client llmv1.CompletionServiceClient
	cfg    *config.LLMConfig
}

// NewGRPCCompleter dials the sidecar. The connection is lazy; failures
// surface on the first Complete call.
func NewGRPCCompleter(cfg *config.LLMConfig) (*GRPCCompleter, error) {
	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to completion service at %s: %w", cfg.Addr, err)
	}
	return &GRPCCompleter{
		conn:   conn,
		client: llmv1.NewCompletionServiceClient(conn),
		cfg:    cfg,
	}, nil
}

// Complete performs one completion RPC, bounded by the configured request
// timeout.
func (c *GRPCCompleter) Complete(ctx context.Context, req *Request) (*Response, error) {
	if c.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.RequestTimeout)
		defer cancel()
	}

	pbReq := &llmv1.CompletionRequest{
		RequestId:    uuid.New().String(),
		WorkspaceId:  req.WorkspaceID,
		Model:        req.Model,
		SystemPrompt: req.SystemPrompt,
		Temperature:  req.Temperature,
		MaxTokens:    req.MaxTokens,
	}
	if pbReq.Model == "" {
		pbReq.Model = c.cfg.Model
	}
	if pbReq.Temperature == nil {
		pbReq.Temperature = c.cfg.Temperature
	}
	if pbReq.MaxTokens == nil && c.cfg.MaxTokens > 0 {
		mt := int32(c.cfg.MaxTokens)
		pbReq.MaxTokens = &mt
	}
	for _, m := range req.Messages {
		pbReq.Messages = append(pbReq.Messages, &llmv1.PromptMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.Complete(ctx, pbReq)
	if err != nil {
		return nil, classifyRPCError(err)
	}

	out := &Response{
		Text:         resp.GetText(),
		FinishReason: resp.GetFinishReason(),
	}
	if usage := resp.GetUsage(); usage != nil {
		out.InputTokens = int(usage.GetInputTokens())
		out.OutputTokens = int(usage.GetOutputTokens())
		out.TotalTokens = int(usage.GetTotalTokens())
		out.CostEstimate = usage.GetCostEstimate()
	}
	return out, nil
}

// Close releases the gRPC connection.
func (c *GRPCCompleter) Close() error {
	return c.conn.Close()
}

// classifyRPCError maps gRPC status codes onto the failure taxonomy so the
// retry layer and terminal records see stable kinds.
func classifyRPCError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return models.WrapFailure(models.ErrKindLLMFailed, err, "completion call failed")
	}
	switch st.Code() {
	case codes.DeadlineExceeded:
		return models.WrapFailure(models.ErrKindDeadlineExceeded, err, "completion deadline exceeded")
	case codes.Canceled:
		return models.WrapFailure(models.ErrKindCancelled, err, "completion cancelled")
	case codes.InvalidArgument:
		return models.WrapFailure(models.ErrKindInvalidInput, err, "completion request rejected")
	default:
		return models.WrapFailure(models.ErrKindLLMFailed, err, "completion call failed: %s", st.Code())
	}
}
