package controllers

import (
	"time"

	"brazyl/apperrors"
	dbpkg "brazyl/db"
	"brazyl/models"
	"brazyl/tools"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type CreateUserInput struct {
	WhatsappNumber string `json:"whatsapp_number" form:"whatsapp_number"`
	Name           string `json:"name" form:"name"`
	Email          string `json:"email" form:"email"`
	CPF            string `json:"cpf" form:"cpf"`
	PlanType       string `json:"plan_type" form:"plan_type"` // padrão: FREE
}

// POST /api/users
func CreateUser(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, apperrors.Internal("db não configurado no contexto"))
		return
	}

	var in CreateUserInput
	if err := c.Bind(&in); err != nil {
		RespondError(c, apperrors.Validation("%s", err.Error()))
		return
	}

	whatsapp, ok := tools.NormalizeWhatsAppNumber(in.WhatsappNumber)
	if !ok {
		RespondError(c, apperrors.Validation("número de WhatsApp inválido"))
		return
	}
	if missing := (models.User{WhatsappNumber: whatsapp, Name: in.Name}).MissingFields(); missing != "" {
		RespondError(c, apperrors.Validation("faltando campo %s", missing))
		return
	}
	if in.Email != "" && !tools.ValidateEmail(in.Email) {
		RespondError(c, apperrors.Validation("e-mail inválido"))
		return
	}
	if in.CPF != "" && !tools.ValidateCPF(in.CPF) {
		RespondError(c, apperrors.Validation("CPF inválido"))
		return
	}

	planType := in.PlanType
	if planType == "" {
		planType = models.PLAN_TYPE_FREE
	}
	plan, err := planRegistry.GetByType(planType)
	if err != nil {
		RespondError(c, err)
		return
	}

	var existing models.User
	if err := db.Where("whatsapp_number = ?", whatsapp).First(&existing).Error; err == nil {
		RespondError(c, apperrors.Conflict("usuário já cadastrado com este WhatsApp"))
		return
	} else if !gorm.IsRecordNotFoundError(err) {
		RespondError(c, err)
		return
	}

	user := models.User{
		WhatsappNumber:      whatsapp,
		Name:                in.Name,
		Email:               in.Email,
		CPF:                 in.CPF,
		PlanID:              &plan.ID,
		IsActive:            true,
		NotificationEnabled: true,
		NotificationHour:    8,
	}
	if err := db.Create(&user).Error; err != nil {
		RespondError(c, err)
		return
	}

	RespondCreated(c, gin.H{"user": user, "plan": plan})
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, apperrors.Internal("db não configurado no contexto"))
		return
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		RespondError(c, apperrors.NotFound("usuário não encontrado"))
		return
	}

	var followingCount int64
	if err := db.Model(&models.Follow{}).Where("user_id = ?", user.ID).Count(&followingCount).Error; err != nil {
		RespondError(c, err)
		return
	}

	var plan *models.Plan
	if user.PlanID != nil {
		var p models.Plan
		if err := db.First(&p, *user.PlanID).Error; err == nil {
			plan = &p
		}
	}

	RespondSuccess(c, gin.H{"user": user, "plan": plan, "following_count": followingCount})
}

// GET /api/users/by-whatsapp/:number
// É assim que o bot resolve o remetente de uma mensagem recebida.
func GetUserByWhatsApp(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, apperrors.Internal("db não configurado no contexto"))
		return
	}

	whatsapp, ok := tools.NormalizeWhatsAppNumber(c.Param("number"))
	if !ok {
		RespondError(c, apperrors.Validation("número de WhatsApp inválido"))
		return
	}

	var user models.User
	if err := db.Where("whatsapp_number = ?", whatsapp).First(&user).Error; err != nil {
		RespondError(c, apperrors.NotFound("usuário não encontrado"))
		return
	}

	RespondSuccess(c, gin.H{"user": user})
}

type UpdateUserInput struct {
	Name                *string `json:"name" form:"name"`
	Email               *string `json:"email" form:"email"`
	CPF                 *string `json:"cpf" form:"cpf"`
	PlanType            *string `json:"plan_type" form:"plan_type"`
	IsActive            *bool   `json:"is_active" form:"is_active"`
	NotificationEnabled *bool   `json:"notification_enabled" form:"notification_enabled"`
	NotificationHour    *int    `json:"notification_hour" form:"notification_hour"`
}

// PUT /api/users/:id
// Atualização parcial: só altera o que veio no body. Troca de plano não mexe
// em follows existentes (downgrade não apaga nada retroativamente).
func UpdateUser(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, apperrors.Internal("db não configurado no contexto"))
		return
	}

	var in UpdateUserInput
	if err := c.Bind(&in); err != nil {
		RespondError(c, apperrors.Validation("%s", err.Error()))
		return
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		RespondError(c, apperrors.NotFound("usuário não encontrado"))
		return
	}

	if in.Name != nil {
		if *in.Name == "" {
			RespondError(c, apperrors.Validation("name não pode ser vazio"))
			return
		}
		user.Name = *in.Name
	}
	if in.Email != nil {
		if *in.Email != "" && !tools.ValidateEmail(*in.Email) {
			RespondError(c, apperrors.Validation("e-mail inválido"))
			return
		}
		user.Email = *in.Email
	}
	if in.CPF != nil {
		if *in.CPF != "" && !tools.ValidateCPF(*in.CPF) {
			RespondError(c, apperrors.Validation("CPF inválido"))
			return
		}
		user.CPF = *in.CPF
	}
	if in.PlanType != nil {
		plan, err := planRegistry.GetByType(*in.PlanType)
		if err != nil {
			RespondError(c, err)
			return
		}
		user.PlanID = &plan.ID
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.NotificationEnabled != nil {
		user.NotificationEnabled = *in.NotificationEnabled
	}
	if in.NotificationHour != nil {
		if *in.NotificationHour < 0 || *in.NotificationHour > 23 {
			RespondError(c, apperrors.Validation("notification_hour deve estar entre 0 e 23"))
			return
		}
		user.NotificationHour = *in.NotificationHour
	}

	now := time.Now()
	user.LastInteractionAt = &now

	if err := db.Save(&user).Error; err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, gin.H{"user": user})
}
