package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mgx-dev/mgx/ent"
	"github.com/mgx-dev/mgx/ent/agentcontext"
	"github.com/mgx-dev/mgx/ent/agentcontextversion"
	"github.com/mgx-dev/mgx/ent/agentdefinition"
	"github.com/mgx-dev/mgx/ent/agentinstance"
	"github.com/mgx-dev/mgx/ent/agentmemoryentry"
	"github.com/mgx-dev/mgx/pkg/agent"
	"github.com/mgx-dev/mgx/pkg/events"
	"github.com/mgx-dev/mgx/pkg/models"
)

// EventSink receives service-level events. *events.Emitter satisfies it.
type EventSink interface {
	Emit(envelope *events.Envelope)
}

// AgentService manages agent definitions and instances, the assignment
// policy, versioned shared contexts, and per-instance memory with TTL and
// LRU pruning. The pure selection/versioning/eviction rules live in
// pkg/agent; this service binds them to ent.
type AgentService struct {
	client   *ent.Client
	assigner *agent.Assigner
	sink     EventSink

	// MemoryLimits bounds every instance's memory store. Zero fields use
	// the pkg/agent defaults.
	MemoryLimits agent.MemoryLimits
}

// NewAgentService creates a new AgentService. sink may be nil.
func NewAgentService(client *ent.Client, sink EventSink) *AgentService {
	return &AgentService{
		client:   client,
		assigner: agent.NewAssigner(),
		sink:     sink,
	}
}

// CreateDefinition registers an agent definition and spawns its
// instances. Instances default to one.
func (s *AgentService) CreateDefinition(httpCtx context.Context, req models.CreateAgentDefinitionRequest) (*ent.AgentDefinition, error) {
	role := agent.Role(req.Role)
	if !role.Valid() {
		return nil, models.NewFailure(models.ErrKindInvalidInput, "unknown agent role %q", req.Role)
	}
	instances := req.Instances
	if instances <= 0 {
		instances = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	capabilities := req.Capabilities
	if len(capabilities) == 0 {
		capabilities = role.RequiredCapabilities()
	}

	builder := tx.AgentDefinition.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(req.WorkspaceID).
		SetName(req.Name).
		SetRole(agentdefinition.Role(role)).
		SetCapabilities(capabilities)
	if req.Model != "" {
		builder.SetModel(req.Model)
	}
	if req.SystemPrompt != "" {
		builder.SetSystemPrompt(req.SystemPrompt)
	}
	def, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent definition: %w", err)
	}

	for i := 0; i < instances; i++ {
		if _, err := tx.AgentInstance.Create().
			SetID(uuid.New().String()).
			SetAgentDefinitionID(def.ID).
			SetWorkspaceID(req.WorkspaceID).
			SetStatus(agentinstance.StatusAvailable).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to create agent instance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit agent definition: %w", err)
	}
	return def, nil
}

// ListDefinitions lists a workspace's agent definitions.
func (s *AgentService) ListDefinitions(ctx context.Context, workspaceID string) ([]*ent.AgentDefinition, error) {
	defs, err := s.client.AgentDefinition.Query().
		Where(agentdefinition.WorkspaceIDEQ(workspaceID)).
		Order(ent.Asc(agentdefinition.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent definitions: %w", err)
	}
	return defs, nil
}

// ListInstances returns the assignment view of a workspace's online
// instances for a role.
func (s *AgentService) ListInstances(ctx context.Context, workspaceID string, role agent.Role) ([]agent.Instance, error) {
	rows, err := s.client.AgentInstance.Query().
		Where(
			agentinstance.WorkspaceIDEQ(workspaceID),
			agentinstance.StatusNEQ(agentinstance.StatusOffline),
			agentinstance.HasDefinitionWith(agentdefinition.RoleEQ(agentdefinition.Role(role))),
		).
		WithDefinition().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent instances: %w", err)
	}

	instances := make([]agent.Instance, 0, len(rows))
	for _, row := range rows {
		inst := agent.Instance{
			ID:          row.ID,
			Role:        role,
			ActiveSteps: row.ActiveSteps,
		}
		if def := row.Edges.Definition; def != nil {
			inst.Capabilities = def.Capabilities
		}
		instances = append(instances, inst)
	}
	return instances, nil
}

// ChooseInstance picks an instance for the role via the assignment policy
// and reserves it (load counter incremented). The caller must release it
// when the step reaches a terminal state. exclude removes instances that
// already failed this step.
func (s *AgentService) ChooseInstance(ctx context.Context, workspaceID string, role agent.Role, exclude map[string]bool) (*agent.Instance, error) {
	candidates, err := s.ListInstances(ctx, workspaceID, role)
	if err != nil {
		return nil, err
	}
	pick, err := s.assigner.Choose(role, candidates, exclude)
	if err != nil {
		return nil, err
	}
	if err := s.reserve(ctx, pick.ID); err != nil {
		return nil, err
	}
	return pick, nil
}

// InstanceDefinition resolves the definition behind an instance, for the
// model override and system prompt a completion should carry.
func (s *AgentService) InstanceDefinition(ctx context.Context, instanceID string) (*ent.AgentDefinition, error) {
	row, err := s.client.AgentInstance.Query().
		Where(agentinstance.IDEQ(instanceID)).
		WithDefinition().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound, "agent instance %s not found", instanceID)
		}
		return nil, fmt.Errorf("failed to load agent instance: %w", err)
	}
	if row.Edges.Definition == nil {
		return nil, models.NewFailure(models.ErrKindInternal, "agent instance %s has no definition", instanceID)
	}
	return row.Edges.Definition, nil
}

// reserve increments the instance's load counter.
func (s *AgentService) reserve(ctx context.Context, instanceID string) error {
	err := s.client.AgentInstance.UpdateOneID(instanceID).
		AddActiveSteps(1).
		SetStatus(agentinstance.StatusBusy).
		SetLastAssignedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.NewFailure(models.ErrKindNotFound, "agent instance %s not found", instanceID)
		}
		return fmt.Errorf("failed to reserve agent instance: %w", err)
	}
	return nil
}

// ReleaseInstance decrements the instance's load counter on step
// completion. Never fails the caller's path; a missed release only skews
// load balancing.
func (s *AgentService) ReleaseInstance(ctx context.Context, instanceID string) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.AgentInstance.Query().
		Where(agentinstance.IDEQ(instanceID)).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		return
	}
	active := row.ActiveSteps - 1
	if active < 0 {
		active = 0
	}
	update := row.Update().SetActiveSteps(active)
	if active == 0 {
		update.SetStatus(agentinstance.StatusAvailable)
	}
	if err := update.Exec(writeCtx); err != nil {
		return
	}
	_ = tx.Commit()
}

// --- shared context ---

// WriteContext appends a new immutable version to the named context,
// creating the context on first write. Version allocation and the data
// write share one transaction under the context's row lock.
func (s *AgentService) WriteContext(ctx context.Context, workspaceID, projectID, name string, data map[string]any, writtenBy string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := s.lockOrCreateContext(writeCtx, tx, workspaceID, projectID, name)
	if err != nil {
		return 0, err
	}

	version, err := agent.NextVersion(row.CurrentVersion)
	if err != nil {
		return 0, err
	}
	if err := s.appendVersion(writeCtx, tx, row, version, data, writtenBy, 0); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit context write: %w", err)
	}

	s.emitContextUpdated(workspaceID, row.ID, name, version, writtenBy)
	return version, nil
}

// ReadContext reads one version of the named context. Version 0 reads
// the head.
func (s *AgentService) ReadContext(ctx context.Context, workspaceID, projectID, name string, version int) (map[string]any, int, error) {
	row, err := s.client.AgentContext.Query().
		Where(
			agentcontext.WorkspaceIDEQ(workspaceID),
			agentcontext.ProjectIDEQ(projectID),
			agentcontext.NameEQ(name),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, 0, models.NewFailure(models.ErrKindNotFound, "context %q not found", name)
		}
		return nil, 0, fmt.Errorf("failed to load context: %w", err)
	}

	if version == 0 {
		version = row.CurrentVersion
	}
	vrow, err := s.client.AgentContextVersion.Query().
		Where(
			agentcontextversion.ContextIDEQ(row.ID),
			agentcontextversion.VersionEQ(version),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, 0, models.NewFailure(models.ErrKindNotFound,
				"context %q has no version %d", name, version)
		}
		return nil, 0, fmt.Errorf("failed to load context version: %w", err)
	}
	return vrow.Data, version, nil
}

// RollbackContext creates a new head version whose data equals the
// target version's. History is never rewritten.
func (s *AgentService) RollbackContext(ctx context.Context, workspaceID, projectID, name string, target int, writtenBy string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	row, err := tx.AgentContext.Query().
		Where(
			agentcontext.WorkspaceIDEQ(workspaceID),
			agentcontext.ProjectIDEQ(projectID),
			agentcontext.NameEQ(name),
		).
		ForUpdate().
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, models.NewFailure(models.ErrKindNotFound, "context %q not found", name)
		}
		return 0, fmt.Errorf("failed to lock context: %w", err)
	}

	// Validate the target range with the pure versioning rules before
	// touching any row.
	if _, err := agent.RollbackVersion(row.CurrentVersion, agent.ContextVersion{Version: target}); err != nil {
		return 0, err
	}

	targetRow, err := tx.AgentContextVersion.Query().
		Where(
			agentcontextversion.ContextIDEQ(row.ID),
			agentcontextversion.VersionEQ(target),
		).
		Only(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, models.NewFailure(models.ErrKindNotFound,
				"context %q has no version %d", name, target)
		}
		return 0, fmt.Errorf("failed to load rollback target: %w", err)
	}

	version := row.CurrentVersion + 1
	if err := s.appendVersion(writeCtx, tx, row, version, targetRow.Data, writtenBy, target); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit rollback: %w", err)
	}

	s.emitContextUpdated(workspaceID, row.ID, name, version, writtenBy)
	return version, nil
}

// lockOrCreateContext loads the context under a row lock, creating it at
// version 0 on first use.
func (s *AgentService) lockOrCreateContext(ctx context.Context, tx *ent.Tx, workspaceID, projectID, name string) (*ent.AgentContext, error) {
	row, err := tx.AgentContext.Query().
		Where(
			agentcontext.WorkspaceIDEQ(workspaceID),
			agentcontext.ProjectIDEQ(projectID),
			agentcontext.NameEQ(name),
		).
		ForUpdate().
		Only(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to lock context: %w", err)
	}

	row, err = tx.AgentContext.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(workspaceID).
		SetProjectID(projectID).
		SetName(name).
		SetCurrentVersion(0).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}
	return row, nil
}

// appendVersion writes a version row and advances the head pointer.
func (s *AgentService) appendVersion(ctx context.Context, tx *ent.Tx, row *ent.AgentContext, version int, data map[string]any, writtenBy string, rolledBackFrom int) error {
	builder := tx.AgentContextVersion.Create().
		SetID(uuid.New().String()).
		SetContextID(row.ID).
		SetVersion(version).
		SetData(data)
	if writtenBy != "" {
		builder.SetWrittenBy(writtenBy)
	}
	if rolledBackFrom > 0 {
		builder.SetRolledBackFrom(rolledBackFrom)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to write context version: %w", err)
	}
	if err := row.Update().
		SetCurrentVersion(version).
		SetUpdatedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to advance context head: %w", err)
	}
	return nil
}

func (s *AgentService) emitContextUpdated(workspaceID, contextID, name string, version int, writtenBy string) {
	if s.sink == nil {
		return
	}
	envelope := events.NewEnvelope(events.EventAgentContextUpdated, workspaceID, map[string]any{
		"context_id": contextID,
		"name":       name,
		"version":    version,
	})
	envelope.AgentID = writtenBy
	s.sink.Emit(envelope)
}

// --- agent memory ---

// PutMemory writes a key into an instance's memory and prunes the store
// to its limits. Mutations are serialized per instance by the instance
// row lock.
func (s *AgentService) PutMemory(ctx context.Context, instanceID, workspaceID, key string, value []byte) error {
	if key == "" {
		return models.NewFailure(models.ErrKindInvalidInput, "memory key required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.lockInstance(writeCtx, tx, instanceID); err != nil {
		return err
	}
	if err := upsertMemoryEntry(writeCtx, tx, instanceID, workspaceID, key, value, ""); err != nil {
		return err
	}
	if err := s.pruneMemory(writeCtx, tx, instanceID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit memory write: %w", err)
	}
	return nil
}

// GetMemory reads a key and refreshes its access time for LRU ordering.
func (s *AgentService) GetMemory(ctx context.Context, instanceID, key string) ([]byte, error) {
	row, err := s.client.AgentMemoryEntry.Query().
		Where(
			agentmemoryentry.AgentInstanceIDEQ(instanceID),
			agentmemoryentry.KeyEQ(key),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, models.NewFailure(models.ErrKindNotFound,
				"memory key %q not found for instance %s", key, instanceID)
		}
		return nil, fmt.Errorf("failed to read memory: %w", err)
	}
	if err := row.Update().SetAccessedAt(time.Now()).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to touch memory entry: %w", err)
	}
	return row.Value, nil
}

// Handoff atomically copies the listed keys from one instance's memory
// into another's, stamping each copy with its origin. The source keeps
// its entries. All-or-nothing: a missing key fails the whole handoff.
func (s *AgentService) Handoff(ctx context.Context, workspaceID, fromInstanceID, toInstanceID string, keys []string) error {
	if fromInstanceID == toInstanceID {
		return models.NewFailure(models.ErrKindInvalidInput, "handoff source and target are the same instance")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Lock both instances in a stable order to avoid deadlocks between
	// concurrent opposite-direction handoffs.
	first, second := fromInstanceID, toInstanceID
	if second < first {
		first, second = second, first
	}
	if err := s.lockInstance(writeCtx, tx, first); err != nil {
		return err
	}
	if err := s.lockInstance(writeCtx, tx, second); err != nil {
		return err
	}

	rows, err := tx.AgentMemoryEntry.Query().
		Where(
			agentmemoryentry.AgentInstanceIDEQ(fromInstanceID),
			agentmemoryentry.KeyIn(keys...),
		).
		All(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to load source memory: %w", err)
	}
	source := make(map[string][]byte, len(rows))
	for _, row := range rows {
		source[row.Key] = row.Value
	}

	items, err := agent.PlanHandoff(fromInstanceID, source, keys, time.Now())
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := upsertMemoryEntry(writeCtx, tx, toInstanceID, workspaceID, item.Key, item.Value, item.ReceivedFrom); err != nil {
			return err
		}
	}
	if err := s.pruneMemory(writeCtx, tx, toInstanceID); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit handoff: %w", err)
	}

	if s.sink != nil {
		envelope := events.NewEnvelope(events.EventAgentContextUpdated, workspaceID, map[string]any{
			"handoff_from": fromInstanceID,
			"handoff_to":   toInstanceID,
			"keys":         keys,
		})
		envelope.AgentID = toInstanceID
		s.sink.Emit(envelope)
	}
	return nil
}

func (s *AgentService) lockInstance(ctx context.Context, tx *ent.Tx, instanceID string) error {
	_, err := tx.AgentInstance.Query().
		Where(agentinstance.IDEQ(instanceID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.NewFailure(models.ErrKindNotFound, "agent instance %s not found", instanceID)
		}
		return fmt.Errorf("failed to lock agent instance: %w", err)
	}
	return nil
}

func upsertMemoryEntry(ctx context.Context, tx *ent.Tx, instanceID, workspaceID, key string, value []byte, receivedFrom string) error {
	now := time.Now()
	existing, err := tx.AgentMemoryEntry.Query().
		Where(
			agentmemoryentry.AgentInstanceIDEQ(instanceID),
			agentmemoryentry.KeyEQ(key),
		).
		Only(ctx)
	if err == nil {
		update := existing.Update().
			SetValue(value).
			SetSizeBytes(len(value)).
			SetAccessedAt(now)
		if receivedFrom != "" {
			update.SetReceivedFrom(receivedFrom)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to update memory entry: %w", err)
		}
		return nil
	}
	if !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query memory entry: %w", err)
	}

	builder := tx.AgentMemoryEntry.Create().
		SetID(uuid.New().String()).
		SetAgentInstanceID(instanceID).
		SetWorkspaceID(workspaceID).
		SetKey(key).
		SetValue(value).
		SetSizeBytes(len(value)).
		SetAccessedAt(now)
	if receivedFrom != "" {
		builder.SetReceivedFrom(receivedFrom)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to create memory entry: %w", err)
	}
	return nil
}

// pruneMemory applies the eviction plan so the post-write invariants
// hold: TTL, entry cap, byte cap.
func (s *AgentService) pruneMemory(ctx context.Context, tx *ent.Tx, instanceID string) error {
	rows, err := tx.AgentMemoryEntry.Query().
		Where(agentmemoryentry.AgentInstanceIDEQ(instanceID)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load memory entries: %w", err)
	}

	entries := make([]agent.MemoryEntry, len(rows))
	for i, row := range rows {
		entries[i] = agent.MemoryEntry{
			Key:        row.Key,
			SizeBytes:  int64(row.SizeBytes),
			AccessedAt: row.AccessedAt,
		}
	}
	evict := agent.PlanEviction(entries, s.MemoryLimits, time.Now())
	if len(evict) == 0 {
		return nil
	}

	if _, err := tx.AgentMemoryEntry.Delete().
		Where(
			agentmemoryentry.AgentInstanceIDEQ(instanceID),
			agentmemoryentry.KeyIn(evict...),
		).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to evict memory entries: %w", err)
	}
	return nil
}
