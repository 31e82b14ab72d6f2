package searcher

// WinLossBackup is the default backup policy: every node on the path gains a
// visit, and a win credit iff the node's own current player is the winner.
// The orientation matters: a node's win ratio then expresses the winning
// chances of the player about to move there, so a parent choosing among
// children maximizes the mover's own prospects.
type WinLossBackup struct{}

func (WinLossBackup) Update(node *Node, winner int) {
	node.total++
	if node.state.Player() == winner {
		node.won++
	}
}
