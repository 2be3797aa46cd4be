package fake

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xavierca1/evangelism-crm/internal/entity"
	"github.com/xavierca1/evangelism-crm/internal/locale"
	"github.com/xavierca1/evangelism-crm/internal/random"
)

// ChurchBranches places n branches of church in distinct states until every state
// has one, then allows repeats.
func (g *Generator) ChurchBranches(church string, n int) []entity.Branch {
	branches := make([]entity.Branch, 0, n)
	used := make(map[string]bool)

	for i := 0; i < n; i++ {
		available := make([]locale.State, 0, len(locale.States))
		for _, st := range locale.States {
			if !used[st.Name] {
				available = append(available, st)
			}
		}
		if len(available) == 0 {
			available = locale.States
		}

		st := random.Pick(g.src, available)
		used[st.Name] = true

		addr, _ := g.Address(st.Name, "")
		pastorGender := GenderFemale
		if random.Chance(g.src, 0.9) {
			pastorGender = GenderMale
		}

		branches = append(branches, entity.Branch{
			ID:      uuid.New().String(),
			Name:    fmt.Sprintf("%s - %s Branch", church, st.Capital),
			City:    st.Capital,
			State:   st.Name,
			Address: addr.FullAddress,
			Pastor:  g.Person(pastorGender).FullName(),
			Phone:   g.Phone(),
		})
	}
	return branches
}
