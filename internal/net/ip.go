package net

import (
	"fmt"
	"log"
	"net"
)

// GetOutgoingIP finds the preferred local IP address to put in share links.
func GetOutgoingIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// No route to the internet; look at the local interfaces instead.
		return getLocalIPFallback()
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP.String(), nil
}

// getLocalIPFallback is used on networks without internet access.
func getLocalIPFallback() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String(), nil
			}
		}
	}
	log.Println("[SERVER] No suitable local IP found, share link may not work.")
	return "127.0.0.1", nil
}

// ShareLink is the WebSocket URL a browser on the LAN connects to.
func ShareLink(port int) string {
	ip, err := GetOutgoingIP()
	if err != nil {
		log.Printf("[SERVER] Could not determine local IP: %v", err)
		ip = "127.0.0.1"
	}
	return fmt.Sprintf("ws://%s/ws", net.JoinHostPort(ip, fmt.Sprint(port)))
}
