package user

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"time"

	"go-hrm/internal/shared/contextutil"
	usererrors "go-hrm/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context, filter ListFilter) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Patch(ctx context.Context, id string, req PatchUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id string, status string) (UserResponse, error)
	ListDistinctPositions(ctx context.Context) ([]string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create user requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	u := &User{ID: uuid.New()}
	if err := applyRequest(u, req); err != nil {
		return UserResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create user begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := s.checkWrite(ctx, qtx, u, nil); err != nil {
		s.logger.Warn("create user rejected", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	if err := qtx.Create(ctx, u); err != nil {
		s.logger.Warn("create user persist failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	created, err := qtx.FindByID(ctx, u.ID.String())
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create user commit failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("create user success",
		zap.String("request_id", rid),
		zap.String("user_id", u.ID.String()),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context, filter ListFilter) ([]UserResponse, error) {
	if filter.Status != "" {
		if _, ok := ParseStatus(filter.Status); !ok {
			return nil, usererrors.ErrInvalidStatus
		}
	}
	if filter.DepartmentID != "" {
		if _, err := uuid.Parse(filter.DepartmentID); err != nil {
			return nil, usererrors.ErrDepartmentNotFound
		}
	}

	users, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = mapToResponse(&users[i])
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	return s.modify(ctx, "update", id, func(u *User) error {
		return applyPatch(u, req.asPatch())
	})
}

func (s *service) Patch(ctx context.Context, id string, req PatchUserRequest) (UserResponse, error) {
	return s.modify(ctx, "patch", id, func(u *User) error {
		return applyPatch(u, req)
	})
}

// modify loads the user, applies mutate and writes the result back after
// re-running validation with the user itself excluded.
func (s *service) modify(
	ctx context.Context,
	op string,
	id string,
	mutate func(u *User) error,
) (UserResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error(op+" user begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := mutate(u); err != nil {
		return UserResponse{}, err
	}

	if err := s.checkWrite(ctx, qtx, u, &userID); err != nil {
		s.logger.Warn(op+" user rejected", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	if err := qtx.Update(ctx, u); err != nil {
		s.logger.Warn(op+" user persist failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	updated, err := qtx.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(op+" user commit failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info(op+" user success",
		zap.String("request_id", rid),
		zap.String("user_id", id),
	)
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("delete user success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("user_id", id),
	)
	return nil
}

// ChangeStatus moves a user between any two of the enumerated statuses.
// An unknown value fails before the store is touched.
func (s *service) ChangeStatus(ctx context.Context, id string, status string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	next, ok := ParseStatus(status)
	if !ok {
		return UserResponse{}, usererrors.ErrInvalidStatus
	}
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("change status begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.UpdateStatus(ctx, id, next); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u, err := qtx.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("change status commit failed", zap.String("request_id", rid), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("change status success",
		zap.String("request_id", rid),
		zap.String("user_id", id),
		zap.String("status", string(next)),
	)
	return mapToResponse(u), nil
}

func (s *service) ListDistinctPositions(ctx context.Context) ([]string, error) {
	positions, err := s.repo.DistinctPositions(ctx)
	if err != nil {
		s.logger.Error("list positions failed", zap.Error(err))
		return nil, err
	}

	out := make([]string, 0, len(positions))
	for _, p := range positions {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *service) checkWrite(ctx context.Context, repo Repository, u *User, selfID *uuid.UUID) error {
	if err := NewValidator(repo).Validate(ctx, Candidate{Email: u.Email, EmployeeID: u.EmployeeID}, selfID); err != nil {
		return err
	}

	if u.DepartmentID == nil {
		return nil
	}
	ok, err := repo.DepartmentExists(ctx, *u.DepartmentID)
	if err != nil {
		return err
	}
	if !ok {
		return usererrors.ErrDepartmentNotFound
	}
	return nil
}

func applyRequest(u *User, req CreateUserRequest) error {
	status := StatusActive
	if req.Status != "" {
		st, ok := ParseStatus(req.Status)
		if !ok {
			return usererrors.ErrInvalidStatus
		}
		status = st
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return err
	}
	hire, err := parseDate(req.HireDate)
	if err != nil {
		return err
	}
	deptID, err := parseDepartmentID(req.DepartmentID)
	if err != nil {
		return err
	}
	if err := checkGender(req.Gender); err != nil {
		return err
	}

	u.FirstName = strings.TrimSpace(req.FirstName)
	u.LastName = strings.TrimSpace(req.LastName)
	if u.FirstName == "" || u.LastName == "" {
		return usererrors.ErrBlankName
	}
	u.Email = strings.TrimSpace(req.Email)
	u.Phone = req.Phone
	u.DateOfBirth = dob
	u.Gender = req.Gender
	u.Address = req.Address
	u.City = req.City
	u.State = req.State
	u.Country = req.Country
	u.PostalCode = req.PostalCode
	u.DepartmentID = deptID
	u.Department = nil
	u.Position = strings.TrimSpace(req.Position)
	u.EmployeeID = optionalString(req.EmployeeID)
	u.HireDate = hire
	u.Salary = req.Salary
	u.Status = status
	u.ProfilePicture = req.ProfilePicture
	u.Bio = req.Bio
	return nil
}

func applyPatch(u *User, req PatchUserRequest) error {
	if req.Status != nil {
		st, ok := ParseStatus(*req.Status)
		if !ok {
			return usererrors.ErrInvalidStatus
		}
		u.Status = st
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return err
		}
		u.DateOfBirth = dob
	}
	if req.HireDate != nil {
		hire, err := parseDate(*req.HireDate)
		if err != nil {
			return err
		}
		u.HireDate = hire
	}
	if req.DepartmentID != nil {
		deptID, err := parseDepartmentID(*req.DepartmentID)
		if err != nil {
			return err
		}
		u.DepartmentID = deptID
		u.Department = nil
	}
	if req.Gender != nil {
		if err := checkGender(*req.Gender); err != nil {
			return err
		}
		u.Gender = *req.Gender
	}

	for _, name := range []*string{req.FirstName, req.LastName} {
		if name != nil && strings.TrimSpace(*name) == "" {
			return usererrors.ErrBlankName
		}
	}

	setString(&u.FirstName, req.FirstName, true)
	setString(&u.LastName, req.LastName, true)
	setString(&u.Email, req.Email, true)
	setString(&u.Phone, req.Phone, false)
	setString(&u.Address, req.Address, false)
	setString(&u.City, req.City, false)
	setString(&u.State, req.State, false)
	setString(&u.Country, req.Country, false)
	setString(&u.PostalCode, req.PostalCode, false)
	setString(&u.Position, req.Position, true)
	setString(&u.ProfilePicture, req.ProfilePicture, false)
	setString(&u.Bio, req.Bio, false)

	if req.EmployeeID != nil {
		u.EmployeeID = optionalString(*req.EmployeeID)
	}
	if req.Salary != nil {
		u.Salary = req.Salary
	}
	return nil
}

func setString(dst *string, v *string, trim bool) {
	if v == nil {
		return
	}
	if trim {
		*dst = strings.TrimSpace(*v)
		return
	}
	*dst = *v
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, usererrors.ErrInvalidDate
	}
	return &t, nil
}

func parseDepartmentID(s string) (*uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, usererrors.ErrDepartmentNotFound
	}
	return &id, nil
}

func checkGender(g string) error {
	switch g {
	case "", "M", "F", "O":
		return nil
	}
	return usererrors.ErrInvalidGender
}

// optionalString maps blank input to NULL so absent employee IDs never
// collide on the unique index.
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func mapToResponse(u *User) UserResponse {
	resp := UserResponse{
		ID:             u.ID.String(),
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		FullName:       u.FullName(),
		Email:          u.Email,
		Phone:          u.Phone,
		DateOfBirth:    formatDate(u.DateOfBirth),
		Gender:         u.Gender,
		Address:        u.Address,
		City:           u.City,
		State:          u.State,
		Country:        u.Country,
		PostalCode:     u.PostalCode,
		Position:       u.Position,
		HireDate:       formatDate(u.HireDate),
		Salary:         u.Salary,
		Status:         string(u.Status),
		ProfilePicture: u.ProfilePicture,
		Bio:            u.Bio,
	}
	if u.DepartmentID != nil {
		resp.DepartmentID = u.DepartmentID.String()
	}
	if u.Department != nil {
		resp.DepartmentName = u.Department.Name
	}
	if u.EmployeeID != nil {
		resp.EmployeeID = *u.EmployeeID
	}
	if !u.CreatedAt.IsZero() {
		resp.CreatedAt = u.CreatedAt.Format(time.RFC3339)
	}
	if !u.UpdatedAt.IsZero() {
		resp.UpdatedAt = u.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
