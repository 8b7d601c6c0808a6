package client

// allocateInstanceIDs returns the lowest Security and Server instance ids not
// used by any server. Each id is probed independently.
func allocateInstanceIDs(servers []*Server) (securityID, serverID uint16) {
	usedSecurity := make(map[uint16]struct{}, len(servers))
	usedServer := make(map[uint16]struct{}, len(servers))
	for _, s := range servers {
		usedSecurity[s.SecurityInstanceID] = struct{}{}
		usedServer[s.ServerInstanceID] = struct{}{}
	}
	return lowestFree(usedSecurity), lowestFree(usedServer)
}

// lowestFree returns the smallest id >= 0 not in used. With fewer than 65535
// entries a free id always exists below the wildcard.
func lowestFree(used map[uint16]struct{}) uint16 {
	var id uint16
	for {
		if _, taken := used[id]; !taken {
			return id
		}
		id++
	}
}
