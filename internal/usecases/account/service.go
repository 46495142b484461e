package account

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seller-analytics-api/infrastructure/repository"
	"github.com/vfg2006/seller-analytics-api/internal/domain"
	"github.com/vfg2006/seller-analytics-api/pkg/apiErrors"
)

// AccountService resolve os workspaces que uma conta autenticada pode acessar
type AccountService interface {
	GetWorkspace(ctx context.Context, claims *domain.Claims, workspaceID string) (*domain.Workspace, error)
	GetDefaultWorkspace(ctx context.Context, claims *domain.Claims) (*domain.Workspace, error)
	WorkspaceStatus(ctx context.Context, claims *domain.Claims, workspaceID string) (*domain.WorkspaceStatusResponse, error)
}

type Service struct {
	accountRepository   repository.AccountRepository
	workspaceRepository repository.WorkspaceRepository
}

func NewService(
	accountRepository repository.AccountRepository,
	workspaceRepository repository.WorkspaceRepository,
) AccountService {
	return &Service{
		accountRepository:   accountRepository,
		workspaceRepository: workspaceRepository,
	}
}

// GetWorkspace retorna o workspace se ele pertencer à conta. Administradores acessam qualquer workspace.
func (s *Service) GetWorkspace(ctx context.Context, claims *domain.Claims, workspaceID string) (*domain.Workspace, error) {
	if workspaceID == "" {
		return nil, NewAccountError(ErrWorkspaceIDRequired, apiErrors.ErrMissingRequiredData, "ID do workspace é obrigatório")
	}
	if claims == nil || claims.AccountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrInvalidToken, "Token sem identificação da conta")
	}

	if _, err := s.activeAccount(ctx, claims.AccountID); err != nil {
		return nil, err
	}

	ws, err := s.workspaceRepository.GetByID(ctx, workspaceID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"error":        err,
		}).Error("Erro ao buscar workspace")
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar workspace")
	}
	if ws == nil {
		return nil, NewAccountError(ErrWorkspaceNotFound, apiErrors.ErrNotFound, "Workspace não encontrado")
	}

	if ws.AccountID != claims.AccountID && claims.RoleID != domain.RoleAdmin {
		logrus.WithFields(logrus.Fields{
			"workspace_id": workspaceID,
			"account_id":   claims.AccountID,
		}).Warn("Acesso negado ao workspace de outra conta")
		// 404 para não revelar a existência do workspace
		return nil, NewAccountErrorWithID(ErrAccessDenied, apiErrors.ErrNotFound, claims.AccountID, "Workspace não encontrado")
	}

	return ws, nil
}

func (s *Service) GetDefaultWorkspace(ctx context.Context, claims *domain.Claims) (*domain.Workspace, error) {
	if claims == nil || claims.AccountID == "" {
		return nil, NewAccountError(ErrAccountIDRequired, apiErrors.ErrInvalidToken, "Token sem identificação da conta")
	}

	if _, err := s.activeAccount(ctx, claims.AccountID); err != nil {
		return nil, err
	}

	ws, err := s.workspaceRepository.GetDefaultByAccountID(ctx, claims.AccountID)
	if err != nil {
		return nil, NewAccountError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar workspace padrão")
	}
	if ws == nil {
		return nil, NewAccountErrorWithID(ErrWorkspaceNotFound, apiErrors.ErrNotFound, claims.AccountID, "Conta sem workspace")
	}

	return ws, nil
}

func (s *Service) WorkspaceStatus(ctx context.Context, claims *domain.Claims, workspaceID string) (*domain.WorkspaceStatusResponse, error) {
	ws, err := s.GetWorkspace(ctx, claims, workspaceID)
	if err != nil {
		return nil, err
	}

	return &domain.WorkspaceStatusResponse{
		ID:                        ws.ID,
		Name:                      ws.Name,
		HasAPIKey:                 ws.HasAPIKey(),
		LastDataUpdateAt:          ws.LastDataUpdateAt,
		LastDataUpdateRequestedAt: ws.LastDataUpdateRequestedAt,
	}, nil
}

func (s *Service) activeAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := s.accountRepository.GetByID(ctx, accountID)
	if err != nil {
		return nil, NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, accountID, "Falha ao buscar conta")
	}
	if acc == nil {
		return nil, NewAccountErrorWithID(ErrAccountNotFound, apiErrors.ErrNotFound, accountID, "Conta não encontrada")
	}
	if !acc.Active {
		return nil, NewAccountErrorWithID(ErrAccountInactive, apiErrors.ErrInsufficientPrivilege, accountID, "Conta inativa")
	}
	return acc, nil
}
