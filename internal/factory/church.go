package factory

import (
	"fmt"
	"strings"
	"time"

	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/locale"
	"github.com/xavierca1/evangelism-crm/internal/random"
)

const titleDate = "January 02, 2006"

var (
	serviceKinds  = []string{"Sunday Service", "Midweek Service", "Prayer Meeting", "Special Program"}
	serviceTimes  = []string{"08:00", "09:00", "10:00", "18:00", "18:30"}
	serviceVenues = []string{"Main Sanctuary", "Youth Hall", "Fellowship Hall", "Outdoor Arena"}
)

// Services builds n past services. Roughly 70% of them produced converts.
func (f *Factory) Services(n int, users []entity.User) []entity.ServiceInstance {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	var createdBy *string
	if len(users) > 0 {
		createdBy = entity.StringPtr(users[0].ID)
	}

	today := f.now().UTC()
	services := make([]entity.ServiceInstance, 0, n)
	for i := 0; i < n; i++ {
		date := today.AddDate(0, 0, -f.src.IntRange(1, 180))
		kind := random.Pick(f.src, serviceKinds)

		var title string
		switch kind {
		case "Sunday Service":
			title = "Sunday Worship Service - " + date.Format(titleDate)
		case "Midweek Service":
			title = "Midweek Bible Study - " + date.Format(titleDate)
		case "Prayer Meeting":
			title = "Prayer and Fasting - " + date.Format(titleDate)
		default:
			title = random.Pick(f.src, locale.EventNames)
		}

		converts := 0
		if random.Chance(f.src, 0.7) {
			converts = f.src.IntRange(5, 30)
		}

		var preacher *string
		if len(names) > 0 {
			preacher = entity.StringPtr(random.Pick(f.src, names))
		}

		services = append(services, entity.ServiceInstance{
			Base:          f.base(),
			Title:         title,
			Type:          kind,
			Date:          date.Format(dateLayout),
			Time:          random.Pick(f.src, serviceTimes),
			Venue:         random.Pick(f.src, serviceVenues),
			Preacher:      preacher,
			Theme:         entity.StringPtr(random.Pick(f.src, locale.SermonThemes)),
			Attendance:    f.src.IntRange(150, 800),
			ConvertsCount: converts,
			Description:   fmt.Sprintf("A blessed %s with powerful ministration", strings.ToLower(kind)),
			CreatedBy:     createdBy,
		})
	}
	return services
}

var listStages = []entity.ListStage{
	{ID: "new", Name: "New", Sequence: 0, Color: "#f97316"},
	{ID: "contacted", Name: "First Contact", Sequence: 1, Color: "#eab308"},
	{ID: "in_followup", Name: "In Follow-up", Sequence: 2, Color: "#22c55e"},
	{ID: "in_classes", Name: "In Classes", Sequence: 3, Color: "#3b82f6"},
	{ID: "in_house_fellowship", Name: "In House Fellowship", Sequence: 4, Color: "#8b5cf6"},
	{ID: "established", Name: "Established", Sequence: 5, Color: "#0d9488"},
}

// ConvertLists builds one list per service that produced converts.
func (f *Factory) ConvertLists(services []entity.ServiceInstance) []entity.ConvertList {
	lists := make([]entity.ConvertList, 0)
	for _, s := range services {
		if s.ConvertsCount <= 0 {
			continue
		}
		stages := make([]entity.ListStage, len(listStages))
		copy(stages, listStages)

		lists = append(lists, entity.ConvertList{
			Base:          f.base(),
			Name:          "Converts from " + s.Title,
			Source:        string(entity.SourceService),
			SourceID:      s.ID,
			SourceDate:    s.Date,
			Stages:        stages,
			TotalConverts: s.ConvertsCount,
			IsActive:      true,
			CreatedBy:     s.CreatedBy,
		})
	}
	return lists
}

func (f *Factory) MembershipClasses() []entity.MembershipClass {
	return []entity.MembershipClass{
		{
			Base:          f.base(),
			Name:          "Foundation Class",
			Description:   "Introduction to the Christian faith and our church doctrine",
			DurationWeeks: 4,
			Topics:        []string{"The New Birth", "Water Baptism", "The Holy Spirit", "Christian Living"},
			IsActive:      true,
		},
		{
			Base:          f.base(),
			Name:          "Discipleship Class",
			Description:   "Deepening your walk with God",
			DurationWeeks: 8,
			Topics: []string{
				"Prayer Life", "Studying the Bible", "Faith", "The Holy Spirit",
				"Spiritual Gifts", "Evangelism", "Stewardship", "Church Membership",
			},
			IsActive: true,
		},
		{
			Base:          f.base(),
			Name:          "Leadership Class",
			Description:   "Training for church workers and leaders",
			DurationWeeks: 12,
			Topics: []string{
				"Leadership Principles", "Servant Leadership", "Team Building",
				"Communication", "Conflict Resolution", "Mentoring Others",
			},
			IsActive: true,
		},
	}
}

type fellowshipSite struct{ city, state string }

var fellowshipSites = []fellowshipSite{
	{"Ikeja", "Lagos"}, {"Yaba", "Lagos"}, {"Surulere", "Lagos"},
	{"Ikorodu", "Lagos"}, {"Lekki", "Lagos"}, {"Victoria Island", "Lagos"},
	{"Ibadan", "Oyo"}, {"Abeokuta", "Ogun"},
}

var (
	meetingDays  = []string{"Tuesday", "Wednesday", "Thursday", "Saturday"}
	meetingTimes = []string{"18:00", "18:30", "19:00"}
)

func (f *Factory) HouseFellowships() ([]entity.HouseFellowship, error) {
	fellowships := make([]entity.HouseFellowship, 0, len(fellowshipSites))
	for i, site := range fellowshipSites {
		leader := f.gen.Person("")
		addr, err := f.gen.Address(site.state, site.city)
		if err != nil {
			return nil, err
		}
		fellowships = append(fellowships, entity.HouseFellowship{
			Base:        f.base(),
			Name:        fmt.Sprintf("%s House Fellowship %d", site.city, i+1),
			Address:     addr.FullAddress,
			City:        site.city,
			State:       site.state,
			LeaderName:  leader.FullName(),
			LeaderPhone: leader.Phone,
			LeaderEmail: leader.Email,
			MeetingDay:  random.Pick(f.src, meetingDays),
			MeetingTime: random.Pick(f.src, meetingTimes),
			MemberCount: f.src.IntRange(8, 35),
			IsActive:    true,
		})
	}
	return fellowships, nil
}

var followupTypes = []string{"call", "visit", "sms", "email", "meeting"}

// completed three times out of five
var followupStatuses = []string{"completed", "completed", "completed", "no_response", "scheduled"}

var followupNotes = []string{
	"Convert is progressing well in faith",
	"Needs prayer for job situation",
	"Interested in joining house fellowship",
	"Has questions about water baptism",
	"Family challenges, needs support",
	"Very enthusiastic about the church",
	"Missed last two services, follow up needed",
}

const maxFollowupConverts = 100

// Followups logs 1 to 5 contacts for a sample of min(n/3, 100) converts.
func (f *Factory) Followups(converts []entity.Convert, users []entity.User) []entity.FollowupRecord {
	workers := userIDs(users, entity.UserRole.DoesFollowups)

	k := len(converts) / 3
	if k > maxFollowupConverts {
		k = maxFollowupConverts
	}

	records := make([]entity.FollowupRecord, 0)
	for _, c := range random.Sample(f.src, converts, k) {
		n := f.src.IntRange(1, 5)
		for j := 0; j < n; j++ {
			at := c.CreatedAt.Add(time.Duration(f.src.IntRange(1, 60)) * 24 * time.Hour)
			var completed *time.Time
			if random.Chance(f.src, 0.8) {
				completed = entity.TimePtr(at)
			}
			records = append(records, entity.FollowupRecord{
				Base:          f.baseAt(at),
				ConvertID:     c.ID,
				WorkerID:      f.pickID(workers),
				Type:          random.Pick(f.src, followupTypes),
				Status:        random.Pick(f.src, followupStatuses),
				Notes:         random.Pick(f.src, followupNotes),
				ScheduledDate: at,
				CompletedDate: completed,
			})
		}
	}
	return records
}
