package dfs

// IndexOf returns the position of x in s, or -1.
func IndexOf(s []int, x int) int {
	for i, v := range s {
		if v == x {
			return i
		}
	}

	return -1
}
