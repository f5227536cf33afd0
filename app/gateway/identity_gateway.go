package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"kalinga-portal/app/domain"
	"kalinga-portal/app/driver/kratos"
	"kalinga-portal/app/port"
)

const identitySchemaID = "default"

// IdentityGateway implements port.IdentityProvider on top of the Kratos
// driver. Admin-surface calls (create, metadata, delete) go through the admin
// API; sign-in and session checks go through the public frontend API.
type IdentityGateway struct {
	client *kratos.Client
	logger *slog.Logger
}

// NewIdentityGateway creates a new identity gateway.
func NewIdentityGateway(client *kratos.Client, logger *slog.Logger) port.IdentityProvider {
	return &IdentityGateway{
		client: client,
		logger: logger.With("component", "identity_gateway"),
	}
}

// CreateIdentity creates an identity through the admin API. Role metadata and
// the verified-address state are attached in the same call, so provisioning
// needs no follow-up metadata write on this path.
func (g *IdentityGateway) CreateIdentity(ctx context.Context, params port.CreateIdentityParams) (*domain.Identity, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	body := kratosclient.CreateIdentityBody{
		SchemaId: identitySchemaID,
		Traits: map[string]interface{}{
			"email": params.Email,
			"name":  params.Name,
		},
		MetadataPublic: map[string]interface{}{
			"role": string(params.Role),
		},
		Credentials: &kratosclient.IdentityWithCredentials{
			Password: &kratosclient.IdentityWithCredentialsPassword{
				Config: &kratosclient.IdentityWithCredentialsPasswordConfig{
					Password: kratosclient.PtrString(params.Password),
				},
			},
		},
	}

	if params.PreConfirmed {
		body.VerifiableAddresses = []kratosclient.VerifiableIdentityAddress{
			{
				Value:    params.Email,
				Verified: true,
				Via:      "email",
				Status:   "completed",
			},
		}
	}

	identity, httpResp, err := g.client.AdminAPI().IdentityAPI.
		CreateIdentity(ctx).
		CreateIdentityBody(body).
		Execute()
	if err != nil {
		g.logger.Error("identity creation failed",
			"email", params.Email,
			"role", params.Role,
			"http_status", statusOf(httpResp),
			"error", err)
		if statusOf(httpResp) == http.StatusConflict {
			return nil, fmt.Errorf("%w: email already registered", domain.ErrProvisioning)
		}
		return nil, fmt.Errorf("%w: identity creation rejected", domain.ErrProvisioning)
	}

	g.logger.Info("identity created",
		"identity_id", identity.Id,
		"role", params.Role,
		"pre_confirmed", params.PreConfirmed)

	return g.toDomainIdentity(identity)
}

// RegisterIdentity creates an identity through the self-service registration
// flow. This surface cannot attach role metadata; the returned identity
// carries an empty role and the saga must set it afterwards.
func (g *IdentityGateway) RegisterIdentity(ctx context.Context, email, password, name string) (*domain.Identity, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	flow, httpResp, err := g.client.PublicAPI().FrontendAPI.
		CreateNativeRegistrationFlow(ctx).
		Execute()
	if err != nil {
		g.logger.Error("registration flow creation failed",
			"http_status", statusOf(httpResp),
			"error", err)
		return nil, fmt.Errorf("%w: registration unavailable", domain.ErrProvisioning)
	}

	method := kratosclient.UpdateRegistrationFlowWithPasswordMethod{
		Method:   "password",
		Password: password,
		Traits: map[string]interface{}{
			"email": email,
			"name":  name,
		},
	}

	result, httpResp, err := g.client.PublicAPI().FrontendAPI.
		UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(
			kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(&method),
		).
		Execute()
	if err != nil {
		g.logger.Error("registration submission failed",
			"flow_id", flow.Id,
			"http_status", statusOf(httpResp),
			"error", err)
		if statusOf(httpResp) == http.StatusBadRequest || statusOf(httpResp) == http.StatusConflict {
			return nil, fmt.Errorf("%w: email already registered or rejected", domain.ErrProvisioning)
		}
		return nil, fmt.Errorf("%w: registration rejected", domain.ErrProvisioning)
	}

	g.logger.Info("identity registered", "identity_id", result.Identity.Id)

	return g.toDomainIdentity(&result.Identity)
}

// UpdateRoleMetadata sets the role tag on an existing identity, preserving its
// schema and traits.
func (g *IdentityGateway) UpdateRoleMetadata(ctx context.Context, id uuid.UUID, role domain.Role) error {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	existing, httpResp, err := g.client.AdminAPI().IdentityAPI.
		GetIdentity(ctx, id.String()).
		Execute()
	if err != nil {
		g.logger.Error("identity fetch for metadata update failed",
			"identity_id", id,
			"http_status", statusOf(httpResp),
			"error", err)
		return fmt.Errorf("%w: identity not reachable", domain.ErrMetadataUpdate)
	}

	traits, ok := existing.Traits.(map[string]interface{})
	if !ok {
		traits = map[string]interface{}{}
	}

	body := kratosclient.UpdateIdentityBody{
		SchemaId: existing.SchemaId,
		State:    "active",
		Traits:   traits,
		MetadataPublic: map[string]interface{}{
			"role": string(role),
		},
	}

	_, httpResp, err = g.client.AdminAPI().IdentityAPI.
		UpdateIdentity(ctx, id.String()).
		UpdateIdentityBody(body).
		Execute()
	if err != nil {
		g.logger.Error("role metadata update failed",
			"identity_id", id,
			"role", role,
			"http_status", statusOf(httpResp),
			"error", err)
		return fmt.Errorf("%w: metadata write rejected", domain.ErrMetadataUpdate)
	}

	g.logger.Info("role metadata set", "identity_id", id, "role", role)
	return nil
}

// DeleteIdentity removes an identity through the admin API.
func (g *IdentityGateway) DeleteIdentity(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	httpResp, err := g.client.AdminAPI().IdentityAPI.
		DeleteIdentity(ctx, id.String()).
		Execute()
	if err != nil {
		g.logger.Error("identity deletion failed",
			"identity_id", id,
			"http_status", statusOf(httpResp),
			"error", err)
		return fmt.Errorf("failed to delete identity %s: %w", id, err)
	}

	g.logger.Info("identity deleted", "identity_id", id)
	return nil
}

// SignIn performs a password-based native login and returns the session.
func (g *IdentityGateway) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	flow, httpResp, err := g.client.PublicAPI().FrontendAPI.
		CreateNativeLoginFlow(ctx).
		Execute()
	if err != nil {
		g.logger.Error("login flow creation failed",
			"http_status", statusOf(httpResp),
			"error", err)
		return nil, fmt.Errorf("sign-in unavailable: %w", err)
	}

	method := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: email,
		Password:   password,
	}

	result, httpResp, err := g.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(
			kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&method),
		).
		Execute()
	if err != nil {
		status := statusOf(httpResp)
		g.logger.Warn("login submission rejected",
			"http_status", status,
			"error", err)
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("sign-in failed: %w", err)
	}

	session := &domain.Session{ID: result.Session.Id}
	if result.SessionToken != nil {
		session.Token = *result.SessionToken
	}
	if result.Session.ExpiresAt != nil {
		session.ExpiresAt = *result.Session.ExpiresAt
	}

	g.logger.Info("sign-in succeeded", "session_id", session.ID)
	return session, nil
}

// GetCurrentIdentity resolves a session token to its identity.
func (g *IdentityGateway) GetCurrentIdentity(ctx context.Context, sessionToken string) (*domain.Identity, error) {
	if sessionToken == "" {
		return nil, domain.ErrNotAuthenticated
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	session, httpResp, err := g.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(sessionToken).
		Execute()
	if err != nil {
		if statusOf(httpResp) == http.StatusUnauthorized {
			return nil, domain.ErrNotAuthenticated
		}
		g.logger.Error("session check failed",
			"http_status", statusOf(httpResp),
			"error", err)
		return nil, fmt.Errorf("session check failed: %w", err)
	}

	if session.Active != nil && !*session.Active {
		return nil, domain.ErrNotAuthenticated
	}
	if session.Identity == nil {
		return nil, domain.ErrNotAuthenticated
	}

	return g.toDomainIdentity(session.Identity)
}

// RefreshSession revalidates the token and returns the current session state.
// Kratos keeps native session tokens stable, so the token is returned as-is
// with the provider's current expiry.
func (g *IdentityGateway) RefreshSession(ctx context.Context, sessionToken string) (*domain.Session, error) {
	if sessionToken == "" {
		return nil, domain.ErrNotAuthenticated
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	session, httpResp, err := g.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(sessionToken).
		Execute()
	if err != nil {
		if statusOf(httpResp) == http.StatusUnauthorized {
			return nil, domain.ErrNotAuthenticated
		}
		g.logger.Error("session refresh failed",
			"http_status", statusOf(httpResp),
			"error", err)
		return nil, fmt.Errorf("session refresh failed: %w", err)
	}

	if session.Active != nil && !*session.Active {
		return nil, domain.ErrNotAuthenticated
	}

	refreshed := &domain.Session{ID: session.Id, Token: sessionToken}
	if session.ExpiresAt != nil {
		refreshed.ExpiresAt = *session.ExpiresAt
	}
	return refreshed, nil
}

// SignOut revokes the session behind the token.
func (g *IdentityGateway) SignOut(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	httpResp, err := g.client.PublicAPI().FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(kratosclient.PerformNativeLogoutBody{
			SessionToken: sessionToken,
		}).
		Execute()
	if err != nil {
		// An already-invalid token is a successful sign-out.
		if statusOf(httpResp) == http.StatusUnauthorized {
			return nil
		}
		g.logger.Error("sign-out failed",
			"http_status", statusOf(httpResp),
			"error", err)
		return fmt.Errorf("sign-out failed: %w", err)
	}

	return nil
}

func (g *IdentityGateway) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.client.Timeout())
}

// toDomainIdentity maps a Kratos identity onto the domain type. The role tag
// comes from public metadata when present; an unset or foreign-shaped bag
// leaves Role empty so resolution falls back to table probing.
func (g *IdentityGateway) toDomainIdentity(identity *kratosclient.Identity) (*domain.Identity, error) {
	id, err := uuid.Parse(identity.Id)
	if err != nil {
		return nil, fmt.Errorf("provider returned malformed identity id %q: %w", identity.Id, err)
	}

	out := &domain.Identity{ID: id}

	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if email, ok := traits["email"].(string); ok {
			out.Email = email
		}
		if name, ok := traits["name"].(string); ok {
			out.Name = name
		}
	}

	// The raw metadata value is carried through unvalidated: the resolver
	// distinguishes "absent" (fall back to table probes) from "unrecognized"
	// (resolution failure) and owns that decision.
	if meta, ok := identity.MetadataPublic.(map[string]interface{}); ok {
		if raw, ok := meta["role"].(string); ok {
			out.Role = domain.Role(raw)
		}
	}

	for _, addr := range identity.VerifiableAddresses {
		if addr.Value == out.Email && addr.Verified {
			out.EmailVerified = true
			break
		}
	}

	if identity.CreatedAt != nil {
		out.CreatedAt = *identity.CreatedAt
	} else {
		out.CreatedAt = time.Now().UTC()
	}
	if identity.UpdatedAt != nil {
		out.UpdatedAt = *identity.UpdatedAt
	} else {
		out.UpdatedAt = out.CreatedAt
	}

	return out, nil
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
