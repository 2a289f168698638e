package sandbox

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/mgx-dev/mgx/pkg/config"
	"github.com/mgx-dev/mgx/pkg/models"
)

// outputLimit caps captured stdout/stderr per stream.
const outputLimit = 1 << 20 // 1 MiB

// sandboxUser runs the workload as nobody.
const sandboxUser = "65534:65534"

// DockerRunner implements Runner on the Docker Engine API.
type DockerRunner struct {
	cli *client.Client
	cfg *config.SandboxConfig

	// logSink, when set, receives stdout chunks while the container runs.
	logSink LogSink
}

// LogSink receives streaming output chunks during an execution.
type LogSink func(executionID string, chunk []byte)

// NewDockerRunner connects to the local Docker daemon.
func NewDockerRunner(cfg *config.SandboxConfig, logSink LogSink) (*DockerRunner, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, models.WrapFailure(models.ErrKindSandboxFailed, err, "failed to create docker client")
	}
	return &DockerRunner{cli: cli, cfg: cfg, logSink: logSink}, nil
}

// Run executes the spec in a fresh container and always removes it.
// Timeouts and OOM kills come back as classified Results, not errors;
// errors mean the sandbox itself failed.
func (r *DockerRunner) Run(ctx context.Context, spec *Spec) (*Result, error) {
	image, ok := r.cfg.Images[spec.Language]
	if !ok {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "no sandbox image for language %q", spec.Language)
	}

	timeout := r.cfg.DefaultTimeout
	if spec.TimeoutSeconds != nil {
		timeout = time.Duration(*spec.TimeoutSeconds) * time.Second
	}
	if timeout <= 0 {
		// A zero budget expires before anything can run.
		return &Result{
			Status:       StatusTimeout,
			ErrorType:    ErrorTypeTimeout,
			ErrorMessage: fmt.Sprintf("execution exceeded %s", timeout),
		}, nil
	}
	memoryMB := spec.MemoryLimitMB
	if memoryMB <= 0 {
		memoryMB = r.cfg.DefaultMemoryLimitMB
	}
	cpuQuota := spec.CPUQuota
	if cpuQuota <= 0 {
		cpuQuota = r.cfg.DefaultCPUQuota
	}

	command := spec.Command
	if len(command) == 0 {
		detected, err := DetectCommand(spec.Language, spec.CodeDir)
		if err != nil {
			return nil, err
		}
		command = detected
	}

	securityOpt := []string{"no-new-privileges"}
	if r.cfg.SeccompProfile != "" {
		securityOpt = append(securityOpt, "seccomp="+r.cfg.SeccompProfile)
	}
	pidsLimit := int64(256)

	created, err := r.cli.ContainerCreate(ctx,
		&container.Config{
			Image:      image,
			Cmd:        command,
			Env:        spec.Env,
			User:       sandboxUser,
			WorkingDir: "/workspace",
			Tty:        false,
		},
		&container.HostConfig{
			NetworkMode:    "none",
			ReadonlyRootfs: true,
			CapDrop:        []string{"ALL"},
			SecurityOpt:    securityOpt,
			AutoRemove:     false,
			Tmpfs: map[string]string{
				"/tmp": fmt.Sprintf("rw,size=%dm", r.cfg.ScratchSizeMB),
			},
			Mounts: []mount.Mount{{
				Type:     mount.TypeBind,
				Source:   spec.CodeDir,
				Target:   "/workspace",
				ReadOnly: true,
			}},
			Resources: container.Resources{
				Memory:    int64(memoryMB) * 1024 * 1024,
				NanoCPUs:  int64(cpuQuota * 1e9),
				PidsLimit: &pidsLimit,
			},
		},
		nil, nil, "")
	if err != nil {
		return nil, models.WrapFailure(models.ErrKindSandboxFailed, err, "container create failed")
	}
	containerID := created.ID
	defer r.remove(containerID)

	started := time.Now()
	if err := r.cli.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return nil, models.WrapFailure(models.ErrKindSandboxFailed, err, "container start failed")
	}

	if r.logSink != nil {
		go r.streamLogs(ctx, containerID, spec.ExecutionID)
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	waitCh, errCh := r.cli.ContainerWait(runCtx, containerID, container.WaitConditionNotRunning)

	result := &Result{ContainerID: containerID}
	select {
	case status := <-waitCh:
		result.Duration = time.Since(started)
		result.ExitCode = int(status.StatusCode)
	case err := <-errCh:
		result.Duration = time.Since(started)
		if runCtx.Err() == context.DeadlineExceeded {
			r.kill(containerID)
			result.Status = StatusTimeout
			result.ErrorType = ErrorTypeTimeout
			result.ErrorMessage = fmt.Sprintf("execution exceeded %s", timeout)
			r.collectOutput(containerID, result)
			return result, nil
		}
		if ctx.Err() != nil {
			r.kill(containerID)
			result.Status = StatusKilled
			result.ErrorMessage = "execution cancelled"
			return result, nil
		}
		return nil, models.WrapFailure(models.ErrKindSandboxFailed, err, "container wait failed")
	}

	r.collectOutput(containerID, result)

	inspect, err := r.cli.ContainerInspect(context.Background(), containerID)
	if err == nil && inspect.State != nil && inspect.State.OOMKilled {
		result.Status = StatusFailed
		result.ErrorType = ErrorTypeOutOfMemory
		result.ErrorMessage = fmt.Sprintf("killed: exceeded %d MB", memoryMB)
		return result, nil
	}

	if result.ExitCode != 0 {
		result.Status = StatusFailed
		result.ErrorType = ErrorTypeNonzeroExit
		result.ErrorMessage = fmt.Sprintf("exit code %d", result.ExitCode)
		return result, nil
	}
	result.Status = StatusCompleted
	return result, nil
}

// collectOutput demuxes the container's stdout/stderr into the result.
func (r *DockerRunner) collectOutput(containerID string, result *Result) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logs, err := r.cli.ContainerLogs(ctx, containerID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
	})
	if err != nil {
		slog.Warn("Failed to read sandbox logs", "container_id", containerID, "error", err)
		return
	}
	defer logs.Close()

	var stdout, stderr bytes.Buffer
	_, err = stdcopy.StdCopy(
		&limitedWriter{w: &stdout, n: outputLimit},
		&limitedWriter{w: &stderr, n: outputLimit},
		logs)
	if err != nil && err != io.EOF {
		slog.Warn("Sandbox log demux failed", "container_id", containerID, "error", err)
	}
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
}

// streamLogs follows the container output and forwards chunks to the sink.
func (r *DockerRunner) streamLogs(ctx context.Context, containerID, executionID string) {
	logs, err := r.cli.ContainerLogs(ctx, containerID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
	})
	if err != nil {
		return
	}
	defer logs.Close()

	sink := &sinkWriter{sink: r.logSink, executionID: executionID}
	_, _ = stdcopy.StdCopy(sink, sink, logs)
}

func (r *DockerRunner) kill(containerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.cli.ContainerKill(ctx, containerID, "KILL"); err != nil {
		slog.Warn("Failed to kill sandbox container", "container_id", containerID, "error", err)
	}
}

func (r *DockerRunner) remove(containerID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := r.cli.ContainerRemove(ctx, containerID, container.RemoveOptions{Force: true})
	if err != nil {
		slog.Warn("Failed to remove sandbox container", "container_id", containerID, "error", err)
	}
}

// limitedWriter keeps the first n bytes and drops the rest.
type limitedWriter struct {
	w *bytes.Buffer
	n int
}

func (l *limitedWriter) Write(p []byte) (int, error) {
	if remaining := l.n - l.w.Len(); remaining > 0 {
		if len(p) > remaining {
			l.w.Write(p[:remaining])
		} else {
			l.w.Write(p)
		}
	}
	return len(p), nil
}

// sinkWriter forwards writes to a LogSink.
type sinkWriter struct {
	sink        LogSink
	executionID string
}

func (s *sinkWriter) Write(p []byte) (int, error) {
	chunk := make([]byte, len(p))
	copy(chunk, p)
	s.sink(s.executionID, chunk)
	return len(p), nil
}
