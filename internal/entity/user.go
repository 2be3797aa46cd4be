package entity

type UserRole string

const (
	RoleMainAdmin         UserRole = "main_admin"
	RoleClientAdmin       UserRole = "client_admin"
	RoleDataEntry         UserRole = "data_entry"
	RoleFollowupLeader    UserRole = "followup_leader"
	RoleFollowupWorker    UserRole = "followup_worker"
	RolePartner           UserRole = "partner"
	RolePartnerChurchUser UserRole = "partner_church_user"
	RoleMentor            UserRole = "mentor"
	RoleCounsellingLeader UserRole = "counselling_leader"
	RoleWelfareOfficer    UserRole = "welfare_officer"
	RoleReadonly          UserRole = "readonly"
	RoleVoiceAgent        UserRole = "voice_agent"
)

var AllRoles = []UserRole{
	RoleMainAdmin, RoleClientAdmin, RoleDataEntry, RoleFollowupLeader, RoleFollowupWorker,
	RolePartner, RolePartnerChurchUser, RoleMentor, RoleCounsellingLeader, RoleWelfareOfficer,
	RoleReadonly, RoleVoiceAgent,
}

func (r UserRole) IsValid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// CanTakeConverts reports whether converts may be assigned to the role.
func (r UserRole) CanTakeConverts() bool {
	return r == RoleFollowupWorker || r == RoleFollowupLeader || r == RoleMentor
}

// DoesFollowups reports whether the role logs follow-up contacts.
func (r UserRole) DoesFollowups() bool {
	return r == RoleFollowupWorker || r == RoleFollowupLeader
}

type User struct {
	Base           `bson:",inline"`
	Name           string   `json:"name" bson:"name"`
	Email          string   `json:"email" bson:"email"`
	Username       string   `json:"username" bson:"username"`
	Role           UserRole `json:"role" bson:"role"`
	Phone          string   `json:"phone" bson:"phone"`
	Location       string   `json:"location" bson:"location"`
	IsActive       bool     `json:"is_active" bson:"is_active"`
	HashedPassword string   `json:"hashed_password" bson:"hashed_password"`
}

// PublicUser is a User without its credential.
type PublicUser struct {
	Base     `bson:",inline"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	Phone    string   `json:"phone"`
	Location string   `json:"location"`
	IsActive bool     `json:"is_active"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		Base:     u.Base,
		Name:     u.Name,
		Email:    u.Email,
		Username: u.Username,
		Role:     u.Role,
		Phone:    u.Phone,
		Location: u.Location,
		IsActive: u.IsActive,
	}
}
