package gantt

// RigidMember is a task reachable from the origin of a RigidGroup call
// through non-elastic links, together with the link that connected it. The
// link lets a caller recover the member's exact required offset from the
// origin.
type RigidMember struct {
	TaskID string
	Link   Link
}

// RigidGroup returns every task bound to taskID through non-elastic links,
// transitively and in both directions, excluding taskID itself. The
// traversal keeps an explicit work list and visited set so diamonds and even
// cycles among fixed links terminate after discovering each task once.
func RigidGroup(taskID string, links []Link) []RigidMember {
	visited := map[string]bool{taskID: true}
	queue := []string{taskID}

	var members []RigidMember
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, l := range links {
			if l.Elastic {
				continue
			}
			var other string
			switch current {
			case l.From:
				other = l.To
			case l.To:
				other = l.From
			default:
				continue
			}
			if visited[other] {
				continue
			}
			visited[other] = true
			members = append(members, RigidMember{TaskID: other, Link: l})
			queue = append(queue, other)
		}
	}
	return members
}
