package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/soletrade/soletrade/controllers/entities"
	"github.com/soletrade/soletrade/controllers/queries"
	"github.com/soletrade/soletrade/exceptions"
	"github.com/soletrade/soletrade/models"
	"github.com/soletrade/soletrade/types"
)

const (
	authCodeKeyPrefix = "soletrade:email_code:"
	authCodeTTL       = 5 * time.Minute
)

type MemberService struct {
	db     *gorm.DB
	store  KeyStore
	tokens *TokenService
	mailer Mailer
}

func NewMemberService(db *gorm.DB, store KeyStore, tokens *TokenService, mailer Mailer) *MemberService {
	return &MemberService{db: db, store: store, tokens: tokens, mailer: mailer}
}

// SendAuthCode generates a signup code, keeps it for a short window and
// hands it to the mailer.
func (s *MemberService) SendAuthCode(email string) error {
	code := fmt.Sprintf("%06d", rand.Intn(1000000))

	if err := s.store.SetKey(authCodeKeyPrefix+email, code, authCodeTTL); err != nil {
		return err
	}

	return s.mailer.SendAuthCode(email, code)
}

func (s *MemberService) CheckAuthCode(email, code string) error {
	var stored string
	if err := s.store.GetKey(authCodeKeyPrefix+email, &stored); err != nil || stored != code {
		return exceptions.MailAuthNotEqual()
	}

	return s.store.DeleteKey(authCodeKeyPrefix + email)
}

func (s *MemberService) Register(payload *queries.MemberJoinPayload) (*models.Member, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member := &models.Member{
		UID:      uuid.NewString(),
		Email:    payload.Email,
		Password: string(hash),
		Role:     types.RoleUser,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Member{}).Where("email = ?", payload.Email).Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return exceptions.MemberDuplicationEmail()
		}

		return tx.Create(member).Error
	})

	if err != nil {
		return nil, err
	}

	return member, nil
}

func (s *MemberService) Login(payload *queries.MemberLoginPayload) (*entities.MemberLoginEntity, error) {
	var member models.Member
	if err := s.db.First(&member, "email = ?", payload.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.WrongEmail()
		}

		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(payload.Password)) != nil {
		return nil, exceptions.WrongPassword()
	}

	return s.tokens.IssuePair(&member)
}

// Reissue exchanges an expired access token plus a valid refresh token
// for a fresh pair.
func (s *MemberService) Reissue(payload *queries.ReissuePayload) (*entities.MemberLoginEntity, error) {
	claims, err := s.tokens.ParseAllowExpired(payload.AccessToken)
	if err != nil {
		return nil, err
	}

	var member models.Member
	if err := s.db.First(&member, "uid = ?", claims.UID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, exceptions.MemberNotFound()
		}

		return nil, err
	}

	return s.tokens.Reissue(&member, payload.RefreshToken)
}

func (s *MemberService) FindAddresses(member *models.Member) ([]entities.AddressEntity, error) {
	var addresses []models.Address
	if err := s.db.Where("member_id = ?", member.ID).Order("base DESC, id").Find(&addresses).Error; err != nil {
		return nil, err
	}

	addresses_json := make([]entities.AddressEntity, 0, len(addresses))
	for _, address := range addresses {
		addresses_json = append(addresses_json, addressEntity(address))
	}

	return addresses_json, nil
}

// AddAddress creates an address; the member's first one becomes the
// base address automatically.
func (s *MemberService) AddAddress(member *models.Member, payload *queries.AddressPayload) (*entities.AddressEntity, error) {
	address := &models.Address{
		MemberID:    member.ID,
		Name:        payload.Name,
		Phone:       payload.Phone,
		AddressLine: payload.AddressLine,
		Detail:      payload.Detail,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Address{}).Where("member_id = ?", member.ID).Count(&count).Error; err != nil {
			return err
		}

		address.Base = count == 0

		return tx.Create(address).Error
	})

	if err != nil {
		return nil, err
	}

	address_json := addressEntity(*address)

	return &address_json, nil
}

func (s *MemberService) UpdateAddress(member *models.Member, address_id uint64, payload *queries.AddressPayload) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var address models.Address
		if err := tx.First(&address, "id = ? AND member_id = ?", address_id, member.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.AddressNotFound()
			}

			return err
		}

		address.Name = payload.Name
		address.Phone = payload.Phone
		address.AddressLine = payload.AddressLine
		address.Detail = payload.Detail

		return tx.Save(&address).Error
	})
}

func (s *MemberService) DeleteAddress(member *models.Member, address_id uint64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var address models.Address
		if err := tx.First(&address, "id = ? AND member_id = ?", address_id, member.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.AddressNotFound()
			}

			return err
		}

		if address.Base {
			return exceptions.BaseAddressNotDelete()
		}

		return tx.Delete(&address).Error
	})
}

// SetBaseAddress moves the base flag to another address. Re-selecting
// the current base is rejected because the flag can only move, never be
// cleared.
func (s *MemberService) SetBaseAddress(member *models.Member, address_id uint64) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var address models.Address
		if err := tx.First(&address, "id = ? AND member_id = ?", address_id, member.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return exceptions.AddressNotFound()
			}

			return err
		}

		if address.Base {
			return exceptions.BaseAddressUnchecked()
		}

		err := tx.Model(&models.Address{}).
			Where("member_id = ? AND base = ?", member.ID, true).
			Update("base", false).Error

		if err != nil {
			return err
		}

		address.Base = true

		return tx.Save(&address).Error
	})
}

func addressEntity(address models.Address) entities.AddressEntity {
	return entities.AddressEntity{
		ID:          address.ID,
		Name:        address.Name,
		Phone:       address.Phone,
		AddressLine: address.AddressLine,
		Detail:      address.Detail,
		Base:        address.Base,
	}
}
