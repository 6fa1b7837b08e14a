package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const baseURL = "http://localhost:9000/slots?locker_id="

var roles = []string{"client", "courier", "staff"}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	lockerID := 1
	if rand.Intn(5) == 0 {
		lockerID = rand.Intn(1000) + 2
	}

	req, err := http.NewRequest(http.MethodGet, baseURL+strconv.Itoa(lockerID), nil)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	// Без заголовков шлюза сервис отвечает 401
	if rand.Intn(10) != 0 {
		req.Header.Set("X-User-ID", strconv.Itoa(rand.Intn(100)+1))
		req.Header.Set("X-User-Role", roles[rand.Intn(len(roles))])
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", req.URL, "->", resp.Status)
	resp.Body.Close()
}
