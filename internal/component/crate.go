// internal/component/crate.go
package component

// Crate — маркер обычного динамического ящика. Ящики не обладают квантовыми
// свойствами, но получают импульсы временного искажения при телепортации.
type Crate struct{}
