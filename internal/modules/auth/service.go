package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/emeraldgate/core/internal/models"
	sessionpkg "github.com/emeraldgate/core/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB

	// registerMu serializes Register so only one account can ever observe
	// the empty users table and claim the admin role.
	registerMu sync.Mutex
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) GetByID(id string) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Register creates an account. The very first account on a fresh install
// becomes the admin; everyone after that is an agent.
func (s *Service) Register(dto *RegisterDTO) (*models.UserModel, error) {
	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	var emailCount int64
	s.db.Model(&models.UserModel{}).Where("email = ?", dto.Email).Count(&emailCount)
	if emailCount > 0 {
		return nil, errEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var total int64
	s.db.Model(&models.UserModel{}).Count(&total)
	role := models.RoleAgent
	if total == 0 {
		role = models.RoleAdmin
	}

	u := models.UserModel{
		Email:    dto.Email,
		Password: string(hash),
		FullName: dto.FullName,
		Phone:    dto.Phone,
		Role:     role,
	}
	return &u, s.db.Create(&u).Error
}

// Login verifies credentials and issues a session token. A lookup miss
// sleeps before failing so the two failure modes take similar time.
func (s *Service) Login(email, password, ip, ua string) (string, *models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			time.Sleep(3 * time.Second)
			return "", nil, errUserNotFound
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, errWrongPassword
	}

	now := time.Now()
	s.db.Model(&u).Updates(map[string]interface{}{
		"last_login_time": now,
		"last_login_ip":   ip,
	})
	u.LastLoginTime = &now
	u.LastLoginIP = ip

	token, _, err := sessionpkg.Issue(s.db, u.ID, ip, ua, sessionpkg.DefaultTTL)
	return token, &u, err
}

func (s *Service) UpdateProfile(id string, dto *UpdateProfileDTO) (*models.UserModel, error) {
	u, err := s.GetByID(id)
	if err != nil || u == nil {
		return u, err
	}

	updates := map[string]interface{}{}
	if dto.FullName != nil {
		updates["full_name"] = *dto.FullName
		u.FullName = *dto.FullName
	}
	if dto.Phone != nil {
		updates["phone"] = *dto.Phone
		u.Phone = *dto.Phone
	}
	if dto.Avatar != nil {
		updates["avatar"] = *dto.Avatar
		u.Avatar = *dto.Avatar
	}
	return u, s.db.Model(u).Updates(updates).Error
}

func (s *Service) ChangePassword(id, oldPwd, newPwd string) error {
	var u models.UserModel
	if err := s.db.Select("id, password").First(&u, "id = ?", id).Error; err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPwd)); err != nil {
		return errWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(newPwd)); err == nil {
		return errPasswordSameAsOld
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.db.Model(&u).Update("password", string(hash)).Error
}
