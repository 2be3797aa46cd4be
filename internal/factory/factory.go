// Package factory builds demo records. It never touches storage: callers persist
// what it returns and feed stored records back in for the dependent batches.
package factory

import (
	"fmt"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/fake"
	"github.com/xavierca1/evangelism-crm/internal/random"
)

const dateLayout = "2006-01-02"

const (
	ClientEmail    = "info@dependifygospel.ng"
	ClientWebsite  = "https://dependifygospel.ng"
	UserDomain     = "dependifygospel.demo"
	clientBranches = 3
)

// workerRoles is taken in order, then cycled, so small teams still get a leader.
var workerRoles = []entity.UserRole{
	entity.RoleFollowupLeader,
	entity.RoleFollowupWorker,
	entity.RoleFollowupWorker,
	entity.RoleDataEntry,
	entity.RoleMentor,
	entity.RoleCounsellingLeader,
	entity.RoleWelfareOfficer,
	entity.RolePartner,
	entity.RolePartner,
	entity.RoleFollowupWorker,
	entity.RoleFollowupWorker,
	entity.RoleFollowupWorker,
	entity.RoleFollowupWorker,
	entity.RoleFollowupWorker,
}

type Factory struct {
	src      random.Source
	gen      *fake.Generator
	clientID string
	now      func() time.Time
}

func New(src random.Source, clientID string, now func() time.Time) *Factory {
	if now == nil {
		now = time.Now
	}
	return &Factory{
		src:      src,
		gen:      fake.NewGenerator(src, now),
		clientID: clientID,
		now:      now,
	}
}

func (f *Factory) ClientID() string { return f.clientID }

func (f *Factory) base() entity.Base {
	return entity.NewDemoBase(f.clientID, f.now())
}

func (f *Factory) baseAt(t time.Time) entity.Base {
	return entity.NewDemoBase(f.clientID, t)
}

// Client builds the tenant record. Its id is the tenant id.
func (f *Factory) Client(name string) entity.Client {
	b := f.base()
	b.ID = f.clientID

	return entity.Client{
		Base:           b,
		Name:           name,
		Type:           "church",
		Status:         "active",
		Address:        "15 Church Street, Ikeja, Lagos",
		City:           "Ikeja",
		State:          "Lagos",
		Country:        "Nigeria",
		Phone:          f.gen.Phone(),
		Email:          ClientEmail,
		Website:        ClientWebsite,
		PastorInCharge: "Rev. Dr. Emmanuel Adeyemi",
		FoundedYear:    2005,
		MemberCount:    2500,
		Description:    "A vibrant Pentecostal church committed to evangelism and disciple-making",
		Doctrine:       "Pentecostal",
		ServiceTimes: entity.ServiceTimes{
			Sunday:    "8:00 AM, 10:00 AM, 12:00 PM",
			Wednesday: "6:00 PM",
			Friday:    "6:30 PM",
		},
		Settings: entity.ClientSettings{
			Timezone:   "Africa/Lagos",
			Currency:   "NGN",
			Language:   "en",
			DateFormat: "DD/MM/YYYY",
		},
		Branches: f.gen.ChurchBranches(name, clientBranches),
	}
}

// Admin builds the single tenant administrator.
func (f *Factory) Admin(email, hashedPassword string) entity.User {
	p := f.gen.Person(fake.GenderMale)
	return entity.User{
		Base:           f.base(),
		Name:           p.FullName(),
		Email:          email,
		Username:       "admin",
		Role:           entity.RoleClientAdmin,
		Phone:          p.Phone,
		Location:       "Lagos",
		IsActive:       true,
		HashedPassword: hashedPassword,
	}
}

// Workers builds n staff users. Emails are unique per run.
func (f *Factory) Workers(n int, hashedPassword string) []entity.User {
	users := make([]entity.User, 0, n)
	for i := 0; i < n; i++ {
		role := workerRoles[i%len(workerRoles)]
		handle := fmt.Sprintf("%s%d", role, i+1)
		p := f.gen.Person("")

		users = append(users, entity.User{
			Base:           f.base(),
			Name:           p.FullName(),
			Email:          handle + "@" + UserDomain,
			Username:       handle,
			Role:           role,
			Phone:          p.Phone,
			Location:       p.Address.City,
			IsActive:       true,
			HashedPassword: hashedPassword,
		})
	}
	return users
}

func userIDs(users []entity.User, keep func(entity.UserRole) bool) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		if keep == nil || keep(u.Role) {
			ids = append(ids, u.ID)
		}
	}
	return ids
}

func (f *Factory) pickID(ids []string) *string {
	if len(ids) == 0 {
		return nil
	}
	id := random.Pick(f.src, ids)
	return &id
}
