// internal/hero/skill_tree.go
package hero

import "pixel-war/internal/config"

// SkillNode — узел дерева навыков.
type SkillNode struct {
	Name     string
	Level    int
	MaxLevel int
	Cost     int
}

// Maxed — узел прокачан до предела.
func (n *SkillNode) Maxed() bool { return n.Level >= n.MaxLevel }

// SkillTree — упорядоченный набор узлов.
type SkillTree struct {
	Nodes []*SkillNode
}

// NewSkillTree создаёт узлы для навыков в заданном порядке.
func NewSkillTree(skills []string) *SkillTree {
	t := &SkillTree{}
	for _, s := range skills {
		t.Nodes = append(t.Nodes, &SkillNode{Name: s, MaxLevel: config.SkillMaxLevel, Cost: config.SkillCost})
	}
	return t
}

// Node ищет узел по имени.
func (t *SkillTree) Node(name string) *SkillNode {
	for _, n := range t.Nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}
